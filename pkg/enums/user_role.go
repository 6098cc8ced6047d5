package enums

import "fmt"

// UserRole classifies every account into exactly one marketplace role.
type UserRole string

const (
	UserRoleCustomer       UserRole = "customer"
	UserRoleShopOwner      UserRole = "shop_owner"
	UserRoleDeliveryPerson UserRole = "delivery_person"
)

var validUserRoles = []UserRole{
	UserRoleCustomer,
	UserRoleShopOwner,
	UserRoleDeliveryPerson,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
