package entity

// Role is a free-form label attached to a user at registration.
// Any non-empty value is accepted; the constants below are the ones the client offers.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}
