package transport

import (
	"net/http"
	"time"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
	"github.com/anjalishikhare80/event-management-system/internal/transport/middleware"
	"github.com/anjalishikhare80/event-management-system/pkg/session"

	"github.com/gin-gonic/gin"
)

// InitRoutes wires one handler per URL path, mirroring the original route
// table: public auth + index, participant registration, admin management.
func InitRoutes(
	sm *session.Manager,
	authHandler *AuthHandler,
	eventHandler *EventHandler,
	registrationHandler *RegistrationHandler,
	participantHandler *ParticipantHandler,
	uploadDir string,
	timeout time.Duration,
) *gin.Engine {

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(timeout))

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static/uploads", uploadDir)

	router.Use(middleware.LoadSession(sm))

	// Public routes
	router.GET("/", eventHandler.Index)
	router.GET("/signup", authHandler.ShowSignup)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Admin routes
	router.GET("/create_event",
		middleware.RequireRole(sm, entity.RoleAdmin, "Only admins can create events."),
		eventHandler.ShowCreateEvent)
	router.POST("/create_event",
		middleware.RequireRole(sm, entity.RoleAdmin, "Only admins can create events."),
		eventHandler.CreateEvent)
	router.GET("/participants/:id",
		middleware.RequireRole(sm, entity.RoleAdmin, "Only admins can view participants."),
		participantHandler.List)
	router.GET("/remove_participant/:event_id/:user_id",
		middleware.RequireRole(sm, entity.RoleAdmin, "Only admins can remove participants."),
		participantHandler.Remove)
	router.GET("/export_participants/:id",
		middleware.RequireRole(sm, entity.RoleAdmin, "Only admins can export."),
		participantHandler.Export)

	// Participant routes
	router.GET("/register_event/:id",
		middleware.RequireRole(sm, entity.RoleParticipant, "Only participants can register."),
		registrationHandler.ShowRegister)
	router.POST("/register_event/:id",
		middleware.RequireRole(sm, entity.RoleParticipant, "Only participants can register."),
		registrationHandler.Register)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// render adds the session identity and any pending flash notice to the
// template data before writing the page.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if claims, ok := middleware.CurrentSession(c); ok {
		data["Session"] = claims
	}
	if category, message, ok := session.TakeFlash(c); ok {
		data["FlashCategory"] = category
		data["FlashMessage"] = message
	}
	c.HTML(http.StatusOK, name, data)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
