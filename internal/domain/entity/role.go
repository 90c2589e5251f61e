package entity

import "slices"

// Role is a store role carried in access tokens.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleShopManager Role = "shop_manager"
	RoleAdmin       Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShopManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is the role set of one user.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// CanManageSubscriptions reports whether the holder may read and edit other customers' subscriptions.
func (rs Roles) CanManageSubscriptions() bool {
	return rs.Contains(RoleAdmin) || rs.Contains(RoleShopManager)
}

// ToStrings converts Roles to the []string form used in token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings drops unknown role names.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
