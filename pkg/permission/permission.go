// Package permission resolves a role into its fixed capability set.
package permission

import "FoodShare-Backend/domain"

type Permission string

const (
	CreateFood      Permission = "canCreateFood"
	RequestFood     Permission = "canRequestFood"
	ManageRequests  Permission = "canManageRequests"
	ViewAnalytics   Permission = "canViewAnalytics"
	ManageUsers     Permission = "canManageUsers"
	ViewAllListings Permission = "canViewAllListings"
	DistributeFood  Permission = "canDistributeFood"
	ViewDashboard   Permission = "canViewDashboard"
)

type Permissions struct {
	CanCreateFood      bool `json:"canCreateFood"`
	CanRequestFood     bool `json:"canRequestFood"`
	CanManageRequests  bool `json:"canManageRequests"`
	CanViewAnalytics   bool `json:"canViewAnalytics"`
	CanManageUsers     bool `json:"canManageUsers"`
	CanViewAllListings bool `json:"canViewAllListings"`
	CanDistributeFood  bool `json:"canDistributeFood"`
	CanViewDashboard   bool `json:"canViewDashboard"`
}

// For returns the capability set of role. Unknown roles get nothing.
// No role other than Admin may both create and request food.
func For(role string) Permissions {
	switch role {
	case domain.RoleFoodProvider:
		return Permissions{
			CanCreateFood:      true,
			CanManageRequests:  true,
			CanViewAnalytics:   true,
			CanViewAllListings: true,
			CanViewDashboard:   true,
		}
	case domain.RoleNGO:
		return Permissions{
			CanRequestFood:     true,
			CanManageRequests:  true,
			CanViewAnalytics:   true,
			CanViewAllListings: true,
			CanDistributeFood:  true,
			CanViewDashboard:   true,
		}
	case domain.RoleIndividual:
		return Permissions{
			CanRequestFood:     true,
			CanManageRequests:  true,
			CanViewAnalytics:   true,
			CanViewAllListings: true,
			CanViewDashboard:   true,
		}
	case domain.RoleAdmin:
		return Permissions{
			CanCreateFood:      true,
			CanRequestFood:     true,
			CanManageRequests:  true,
			CanViewAnalytics:   true,
			CanManageUsers:     true,
			CanViewAllListings: true,
			CanDistributeFood:  true,
			CanViewDashboard:   true,
		}
	default:
		return Permissions{}
	}
}

func (p Permissions) Allows(perm Permission) bool {
	switch perm {
	case CreateFood:
		return p.CanCreateFood
	case RequestFood:
		return p.CanRequestFood
	case ManageRequests:
		return p.CanManageRequests
	case ViewAnalytics:
		return p.CanViewAnalytics
	case ManageUsers:
		return p.CanManageUsers
	case ViewAllListings:
		return p.CanViewAllListings
	case DistributeFood:
		return p.CanDistributeFood
	case ViewDashboard:
		return p.CanViewDashboard
	default:
		return false
	}
}

// Can reports whether user holds perm. A nil user holds nothing.
func Can(user *domain.User, perm Permission) bool {
	return NewResolver(user).HasPermission(perm)
}

func IsKnownRole(role string) bool {
	switch role {
	case domain.RoleFoodProvider, domain.RoleNGO, domain.RoleIndividual, domain.RoleAdmin:
		return true
	}
	return false
}
