package domain

// Role is the value stored in a user's role field.
type Role string

const RoleAdmin Role = "admin"

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether requester holds the required role. A nil
// requester (unknown email) is always denied. The role is read from the user
// record as-is; there is no token or session behind it.
func Authorize(requester *User, required Role) Decision {
	if requester == nil {
		return Decision{Reason: "requester not found"}
	}
	if Role(requester.Role) != required {
		return Decision{Reason: "requester lacks role " + string(required)}
	}
	return Decision{Allowed: true}
}
