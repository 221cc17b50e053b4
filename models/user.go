package models

// RoleAdmin marks a user allowed through the admin gate.
const RoleAdmin = "admin"

// User carries the fields this service reads. Profiles are stored with
// whatever extra fields the client supplied on upsert; those travel as raw
// documents and are not modelled here.
type User struct {
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role. A nil user (absent
// record) is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
