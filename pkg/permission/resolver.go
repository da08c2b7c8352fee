package permission

import "FoodShare-Backend/domain"

const (
	TabDashboard    = "dashboard"
	TabBrowse       = "browse"
	TabMyListings   = "my-listings"
	TabMyRequests   = "my-requests"
	TabDistribution = "distribution"
	TabAnalytics    = "analytics"
	TabUsers        = "users"
)

var tabOrder = []struct {
	tab  string
	perm Permission
}{
	{TabDashboard, ViewDashboard},
	{TabBrowse, ViewAllListings},
	{TabMyListings, CreateFood},
	{TabMyRequests, RequestFood},
	{TabDistribution, DistributeFood},
	{TabAnalytics, ViewAnalytics},
	{TabUsers, ManageUsers},
}

// Resolver answers permission queries for the current user, which may be nil.
type Resolver struct {
	user *domain.User
}

func NewResolver(user *domain.User) Resolver {
	return Resolver{user: user}
}

func (r Resolver) IsAuthenticated() bool {
	return r.user != nil
}

func (r Resolver) Role() string {
	if r.user == nil {
		return ""
	}
	return r.user.Role
}

func (r Resolver) Permissions() Permissions {
	return For(r.Role())
}

func (r Resolver) HasPermission(perm Permission) bool {
	if r.user == nil {
		return false
	}
	return r.Permissions().Allows(perm)
}

func (r Resolver) RoleName() string {
	switch r.Role() {
	case domain.RoleFoodProvider:
		return "Food Provider"
	case domain.RoleNGO:
		return "NGO/Volunteer"
	case domain.RoleIndividual:
		return "Individual"
	case domain.RoleAdmin:
		return "Administrator"
	default:
		return "Guest"
	}
}

func (r Resolver) RoleDescription() string {
	switch r.Role() {
	case domain.RoleFoodProvider:
		return "List surplus food and manage distribution requests"
	case domain.RoleNGO:
		return "Request food for distribution to beneficiaries"
	case domain.RoleIndividual:
		return "Browse and request available food items"
	case domain.RoleAdmin:
		return "Full system administration and oversight"
	default:
		return "Browse available food items"
	}
}

func (r Resolver) AvailableTabs() []string {
	tabs := make([]string, 0, len(tabOrder))
	for _, t := range tabOrder {
		if r.HasPermission(t.perm) {
			tabs = append(tabs, t.tab)
		}
	}
	return tabs
}

func (r Resolver) DefaultTab() string {
	tabs := r.AvailableTabs()
	has := func(tab string) bool {
		for _, t := range tabs {
			if t == tab {
				return true
			}
		}
		return false
	}

	switch r.Role() {
	case domain.RoleFoodProvider:
		if has(TabMyListings) {
			return TabMyListings
		}
		return TabDashboard
	case domain.RoleNGO, domain.RoleIndividual:
		if has(TabBrowse) {
			return TabBrowse
		}
		return TabDashboard
	case domain.RoleAdmin:
		if has(TabDashboard) {
			return TabDashboard
		}
	}
	if len(tabs) > 0 {
		return tabs[0]
	}
	return TabBrowse
}

// Summary is the serializable view of a resolver.
type Summary struct {
	Role            string      `json:"role"`
	RoleName        string      `json:"role_name"`
	RoleDescription string      `json:"role_description"`
	Permissions     Permissions `json:"permissions"`
	Tabs            []string    `json:"tabs"`
	DefaultTab      string      `json:"default_tab"`
}

func (r Resolver) Summary() Summary {
	return Summary{
		Role:            r.Role(),
		RoleName:        r.RoleName(),
		RoleDescription: r.RoleDescription(),
		Permissions:     r.Permissions(),
		Tabs:            r.AvailableTabs(),
		DefaultTab:      r.DefaultTab(),
	}
}
