// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Admin Roles

// AdminRole represents the authorization level granted to an admin record.
type AdminRole string

const (
	// Can manage admins and banners, and add episodes to any anime
	RoleSuperAdmin AdminRole = "super_admin"

	// Can publish animes and add episodes to their own animes
	RoleAdmin AdminRole = "admin"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r AdminRole) AtLeast(target AdminRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r AdminRole) level() int {

	// Linear scale leaves room for intermediate roles
	switch r {
	case RoleSuperAdmin:
		return 20
	case RoleAdmin:
		return 10
	default:
		return 0
	}
}
