package server

import (
	"net/http"

	"timberco/internal/config"
	"timberco/internal/handlers"
	"timberco/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 86400 // 24 hours

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("timberco_session", store))

	r.Use(middleware.InjectUser())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Timberco API"})
	})

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// AUTH
	api.GET("/user", handlers.GetUser)
	api.POST("/login", handlers.Login)
	api.POST("/register", handlers.Register)
	api.POST("/logout", handlers.Logout)

	// PUBLIC READS + CONTACT FORM
	api.GET("/products", handlers.ListProducts)
	api.GET("/team-members", handlers.ListTeamMembers)
	api.GET("/story-panels", handlers.ListStoryPanels)
	api.GET("/site-settings", handlers.GetSiteSettings)
	api.POST("/contact", handlers.CreateContactMessage)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	// PRODUCTS
	auth.POST("/products", handlers.CreateProduct)
	auth.PATCH("/products/:id", handlers.UpdateProduct)
	auth.DELETE("/products/:id", handlers.DeleteProduct)

	// TEAM MEMBERS
	auth.POST("/team-members", handlers.CreateTeamMember)
	auth.PATCH("/team-members/:id", handlers.UpdateTeamMember)
	auth.DELETE("/team-members/:id", handlers.DeleteTeamMember)

	// STORY PANELS
	auth.POST("/story-panels", handlers.CreateStoryPanel)
	auth.PATCH("/story-panels/:id", handlers.UpdateStoryPanel)
	auth.DELETE("/story-panels/:id", handlers.DeleteStoryPanel)

	// SITE SETTINGS
	auth.PATCH("/site-settings", handlers.UpdateSiteSettings)

	// CONTACT MESSAGES (admin side)
	auth.GET("/contact-messages", handlers.ListContactMessages)
	auth.PATCH("/contact-messages/:id/status", handlers.UpdateContactMessageStatus)
	auth.DELETE("/contact-messages/:id", handlers.DeleteContactMessage)

	// AUDIT
	auth.GET("/audit-log", handlers.ListAuditLog)

	return r
}
