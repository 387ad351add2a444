package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lifekitadmin/handlers"
	"lifekitadmin/middleware"
	"lifekitadmin/session"
)

// RegisterAuthRoutes registers the login and logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/login", h.ShowLogin)
	r.POST("/login", middleware.LoginRateLimit(), h.Login)
	r.POST("/logout", h.Logout)
}

// RegisterPageRoutes registers the console pages. Everything here requires an
// administrator session.
func RegisterPageRoutes(r *gin.Engine, h *handlers.Handler) {
	pages := r.Group("")
	pages.Use(middleware.RequireSession(), middleware.RequireAdmin())
	{
		pages.GET("/", h.Dashboard)
		pages.GET("/activities", h.Activities)
		pages.GET("/transactions", h.Transactions)
		pages.GET("/events", h.Events)
		pages.GET("/analytics", h.Analytics)
		pages.GET("/feeds", h.Feeds)
		pages.GET("/settings", h.Settings)

		pages.POST("/services/:id/review", h.ReviewService)
		pages.POST("/events", h.CreateEvent)
		pages.POST("/events/:id/delete", h.DeleteEvent)
		pages.POST("/events/:id/toggle", h.ToggleEvent)
		pages.POST("/analytics/withdraw", h.Withdraw)
		pages.POST("/feeds", h.CreateFeedPost)
		pages.POST("/feeds/:id/delete", h.DeleteFeedPost)
		pages.POST("/settings/profile", h.SaveProfile)
		pages.POST("/settings/admins", h.InviteAdmin)
		pages.POST("/settings/admins/:id/delete", h.RemoveAdmin)
		pages.POST("/settings/categories", h.CreateCategory)
		pages.POST("/settings/categories/:id/delete", h.DeleteCategory)
	}
}

// RegisterAPIRoutes registers the JSON endpoints the pages call for partial
// refreshes, behind the same session gate.
func RegisterAPIRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api.Use(middleware.RequireAdmin())
	{
		api.GET("/activities/chart", h.ActivityChartJSON)
		api.GET("/analytics/chart", h.AnalyticsChartJSON)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LifeKit Admin"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, sessions session.Store) {
	r.Use(middleware.LoadSession(sessions))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, h)
	RegisterPageRoutes(r, h)
	RegisterAPIRoutes(r, h)
}
