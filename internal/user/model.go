package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             uint
	Email          string
	HashedPassword string
	FullName       *string
	IsActive       bool
	Role           Role
}

// UpdateProfileParams whitelists the mutable profile fields. Anything not
// listed here cannot be changed through the API.
type UpdateProfileParams struct {
	FullName *string
}
