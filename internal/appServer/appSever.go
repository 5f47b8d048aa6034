package appServer

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anjalishikhare80/event-management-system/config"
	repository "github.com/anjalishikhare80/event-management-system/internal/database/sqlite"
	"github.com/anjalishikhare80/event-management-system/internal/service"
	"github.com/anjalishikhare80/event-management-system/internal/transport"
	"github.com/anjalishikhare80/event-management-system/pkg/session"
	"github.com/anjalishikhare80/event-management-system/pkg/sqlite"
	"github.com/anjalishikhare80/event-management-system/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := sqlite.NewSqliteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Create schema idempotently
	if err := sqlite.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	// Initialize session manager and upload storage
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.Expiration)
	uploads := storage.NewFileStorage(cfg.Upload.Dir)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	eventService := service.NewEventService(eventRepo)
	registrationService := service.NewRegistrationService(regRepo, eventRepo, uploads, cfg.Export.TmpDir)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, sessions)
	eventHandler := transport.NewEventHandler(eventService)
	registrationHandler := transport.NewRegistrationHandler(registrationService, eventService)
	participantHandler := transport.NewParticipantHandler(registrationService, eventService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		routes := transport.InitRoutes(sessions, authHandler, eventHandler,
			registrationHandler, participantHandler, cfg.Upload.Dir, cfg.Server.Timeout)
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
