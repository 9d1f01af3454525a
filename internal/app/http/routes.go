package routes

import (
	adminapi "revenue-copilot/internal/api/admin"
	authapi "revenue-copilot/internal/api/auth"
	"revenue-copilot/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/api/auth/register", authapi.Register)
	public.POST("/api/auth/login", authapi.Login)

	r.GET("/auth/sso", authapi.SSOStart)
	r.GET("/auth/sso/callback", authapi.SSOCallback)

	// Admin resources. The role gate runs before any handler touches data.
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("ADMIN"))

	admin.GET("/dashboard", adminapi.Dashboard)

	admin.GET("/organizations", adminapi.ListOrganizations)
	admin.POST("/organizations", adminapi.CreateOrganization)
	admin.GET("/organizations/:id", adminapi.GetOrganization)
	admin.PUT("/organizations/:id", adminapi.UpdateOrganization)
	admin.DELETE("/organizations/:id", adminapi.DeleteOrganization)

	admin.GET("/users", adminapi.ListUsers)
	admin.POST("/users", adminapi.CreateUser)
	admin.GET("/users/:id", adminapi.GetUser)
	admin.PUT("/users/:id", adminapi.UpdateUser)
	admin.DELETE("/users/:id", adminapi.DeleteUser)

	admin.GET("/plans", adminapi.ListPlans)
	admin.POST("/plans", adminapi.CreatePlan)
	admin.GET("/plans/:id", adminapi.GetPlan)
	admin.PUT("/plans/:id", adminapi.UpdatePlan)
	admin.DELETE("/plans/:id", adminapi.DeletePlan)

	admin.GET("/customers", adminapi.ListCustomers)
	admin.POST("/customers", adminapi.CreateCustomer)
	admin.GET("/customers/:id", adminapi.GetCustomer)
	admin.PUT("/customers/:id", adminapi.UpdateCustomer)
	admin.DELETE("/customers/:id", adminapi.DeleteCustomer)

	admin.GET("/subscriptions", adminapi.ListSubscriptions)
	admin.POST("/subscriptions", adminapi.CreateSubscription)
	admin.GET("/subscriptions/:id", adminapi.GetSubscription)
	admin.PUT("/subscriptions/:id", adminapi.UpdateSubscription)
	admin.DELETE("/subscriptions/:id", adminapi.DeleteSubscription)

	admin.GET("/revenue-events", adminapi.ListRevenueEvents)
	admin.POST("/revenue-events", adminapi.CreateRevenueEvent)
	admin.GET("/revenue-events/:id", adminapi.GetRevenueEvent)
	admin.PUT("/revenue-events/:id", adminapi.UpdateRevenueEvent)
	admin.DELETE("/revenue-events/:id", adminapi.DeleteRevenueEvent)

	admin.GET("/invoices", adminapi.ListInvoices)
	admin.POST("/invoices", adminapi.CreateInvoice)
	admin.GET("/invoices/:id", adminapi.GetInvoice)
	admin.PUT("/invoices/:id", adminapi.UpdateInvoice)
	admin.DELETE("/invoices/:id", adminapi.DeleteInvoice)

	admin.GET("/integrations", adminapi.ListIntegrations)
	admin.POST("/integrations", adminapi.CreateIntegration)
	admin.GET("/integrations/:id", adminapi.GetIntegration)
	admin.PUT("/integrations/:id", adminapi.UpdateIntegration)
	admin.DELETE("/integrations/:id", adminapi.DeleteIntegration)

	admin.GET("/api-keys", adminapi.ListAPIKeys)
	admin.POST("/api-keys", adminapi.CreateAPIKey)
	admin.GET("/api-keys/:id", adminapi.GetAPIKey)
	admin.PUT("/api-keys/:id", adminapi.UpdateAPIKey)
	admin.DELETE("/api-keys/:id", adminapi.DeleteAPIKey)

	admin.GET("/team-members", adminapi.ListTeamMembers)
	admin.POST("/team-members", adminapi.CreateTeamMember)
	admin.GET("/team-members/:id", adminapi.GetTeamMember)
	admin.PUT("/team-members/:id", adminapi.UpdateTeamMember)
	admin.DELETE("/team-members/:id", adminapi.DeleteTeamMember)

	admin.GET("/usage-metrics", adminapi.ListUsageMetrics)
	admin.POST("/usage-metrics", adminapi.CreateUsageMetric)
	admin.GET("/usage-metrics/:id", adminapi.GetUsageMetric)
	admin.PUT("/usage-metrics/:id", adminapi.UpdateUsageMetric)
	admin.DELETE("/usage-metrics/:id", adminapi.DeleteUsageMetric)
}
