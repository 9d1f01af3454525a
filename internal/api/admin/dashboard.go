package admin

import (
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/billing"
	"revenue-copilot/internal/domain/customers"
	"revenue-copilot/internal/domain/orgs"
	"revenue-copilot/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	Users         int64 `json:"users"`
	Organizations int64 `json:"organizations"`
	Customers     int64 `json:"customers"`
	Invoices      int64 `json:"invoices"`
}

func Dashboard(c *gin.Context) {
	var stats DashboardStats

	database.DB.Model(&users.User{}).Count(&stats.Users)
	database.DB.Model(&orgs.Organization{}).Count(&stats.Organizations)
	database.DB.Model(&customers.Customer{}).Count(&stats.Customers)
	database.DB.Model(&billing.Invoice{}).Count(&stats.Invoices)

	c.JSON(http.StatusOK, stats)
}
