package domain

import "time"

// ActivityType classifies an entry in the contact trail.
type ActivityType string

const (
	ActivityLogin            ActivityType = "login"
	ActivityCustomerCreated  ActivityType = "customer_created"
	ActivityCustomerEdited   ActivityType = "customer_edited"
	ActivityStatusChanged    ActivityType = "status_changed"
	ActivityLifecycleChanged ActivityType = "lifecycle_changed"
	ActivityImport           ActivityType = "customers_imported"
	ActivityExport           ActivityType = "customers_exported"
)

// Activity is one record of who did what, shown on the dashboard as recent
// activity. Recorded asynchronously; losing one is acceptable, duplicating
// one is not.
type Activity struct {
	ID          string       `json:"id" bson:"_id"`
	Type        ActivityType `json:"type" bson:"type"`
	ActorName   string       `json:"actor_name" bson:"actor_name"`
	CustomerID  string       `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Description string       `json:"description" bson:"description"`
	Timestamp   time.Time    `json:"timestamp" bson:"timestamp"`
}
