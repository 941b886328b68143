package domain

import "time"

// LifecycleState is the coarse relationship stage of a customer record.
type LifecycleState string

const (
	LifecycleCustomer LifecycleState = "customer"
	LifecycleProspect LifecycleState = "prospect"
	LifecycleInactive LifecycleState = "inactive"
)

// ValidLifecycleState reports whether s is a known lifecycle state.
func ValidLifecycleState(s LifecycleState) bool {
	switch s {
	case LifecycleCustomer, LifecycleProspect, LifecycleInactive:
		return true
	}
	return false
}

// StatusTag is the disposition label (tipificación) on a customer record.
type StatusTag string

const (
	TagProcessing        StatusTag = "Processing"
	TagCallBack          StatusTag = "Call Back"
	TagCancelled         StatusTag = "Cancelled"
	TagSentTo            StatusTag = "Sent to"
	TagWaitingForPayment StatusTag = "Waiting for payment"
	TagPaid              StatusTag = "Paid"
	TagTransfer          StatusTag = "Transfer"
	TagReturn            StatusTag = "Return"
	TagDouble            StatusTag = "Double"
	TagSpamErrors        StatusTag = "Spam/Errors"
)

// StatusTags is the full enumerated tag set, in display order.
var StatusTags = []StatusTag{
	TagProcessing,
	TagCallBack,
	TagCancelled,
	TagSentTo,
	TagWaitingForPayment,
	TagPaid,
	TagTransfer,
	TagReturn,
	TagDouble,
	TagSpamErrors,
}

// ValidStatusTag reports whether t belongs to the enumerated tag set.
func ValidStatusTag(t StatusTag) bool {
	for _, known := range StatusTags {
		if t == known {
			return true
		}
	}
	return false
}

const (
	// UnassignedAdvisor is used when an import or create happens without a
	// resolvable actor name.
	UnassignedAdvisor = "Sin asignar"

	contactDateLayout = "2006-01-02"
	contactTimeLayout = "15:04"
)

// Customer is a customer/lead record. ID is unique and immutable after
// creation; Seq preserves insertion order for listing.
type Customer struct {
	ID                  string         `json:"id" bson:"_id"`
	Name                string         `json:"name" bson:"name"`
	PhoneNumber         string         `json:"phone_number" bson:"phone_number"`
	Notes               string         `json:"notes" bson:"notes"`
	StatusTag           StatusTag      `json:"status_tag" bson:"status_tag"`
	LifecycleState      LifecycleState `json:"lifecycle_state" bson:"lifecycle_state"`
	LastContactDate     string         `json:"last_contact_date" bson:"last_contact_date"`
	LastContactTime     string         `json:"last_contact_time" bson:"last_contact_time"`
	AssignedAdvisorName string         `json:"assigned_advisor_name" bson:"assigned_advisor_name"`
	Seq                 int64          `json:"-" bson:"seq"`
}

// StampContact refreshes the last-contact date and time. Every mutation of a
// record counts as a contact.
func (c *Customer) StampContact(now time.Time) {
	c.LastContactDate = now.Format(contactDateLayout)
	c.LastContactTime = now.Format(contactTimeLayout)
}
