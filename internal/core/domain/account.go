package domain

const (
	RoleOwner      = "owner"
	RoleSupervisor = "supervisor"
	RoleAdvisor    = "advisor"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleSupervisor || r == RoleAdvisor
}

// Account is the authoritative user record. The credential lives on the
// account itself (PasswordHash), so creating, editing or deleting an account
// is a single document write and an email change cannot strand a password.
type Account struct {
	ID           string `json:"id" bson:"_id"`
	FirstName    string `json:"first_name" bson:"first_name"`
	LastName     string `json:"last_name" bson:"last_name"`
	DocumentID   string `json:"document_id" bson:"document_id"`
	Phone        string `json:"phone" bson:"phone"`
	Email        string `json:"email" bson:"email"`
	Role         string `json:"role" bson:"role"`
	PasswordHash string `json:"-" bson:"password_hash"`
	CreatedDate  string `json:"created_date" bson:"created_date"`
	Seq          int64  `json:"-" bson:"seq"`
}

// DisplayName is the name customers are assigned to and activities are
// attributed to.
func (a Account) DisplayName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Identity is the authenticated view of an account carried in session claims.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// Identity derives the session identity for this account.
func (a Account) Identity() Identity {
	return Identity{
		ID:          a.ID,
		DisplayName: a.DisplayName(),
		Email:       a.Email,
		Role:        a.Role,
	}
}
