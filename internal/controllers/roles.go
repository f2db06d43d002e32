package controllers

import "github.com/vaishnav/edutech_backend_v1/internal/models"

// dashboards maps each role to the dashboard resource it lands on after login.
var dashboards = map[models.Role]string{
	models.RoleStudent: "/api/v1/student/dashboard",
	models.RoleAdmin:   "/api/v1/admin/dashboard",
}

func DashboardFor(role models.Role) string {
	return dashboards[role]
}
