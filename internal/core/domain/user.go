package domain

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User is the slice of a stored user document the service itself needs.
// Registration accepts arbitrary profile fields; those are persisted as-is
// and never read back through this type.
type User struct {
	ID    string `json:"_id,omitempty" bson:"-"`
	Email string `json:"email" bson:"email"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
}
