// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"voltride-service/internal/config"
	"voltride-service/internal/db"
	authHandler "voltride-service/internal/handlers/auth"
	blogHandler "voltride-service/internal/handlers/blog"
	bookingHandler "voltride-service/internal/handlers/booking"
	catalogHandler "voltride-service/internal/handlers/catalog"
	dashboardHandler "voltride-service/internal/handlers/dashboard"
	dealerHandler "voltride-service/internal/handlers/dealer"
	faqHandler "voltride-service/internal/handlers/faq"
	leadHandler "voltride-service/internal/handlers/lead"
	toolsHandler "voltride-service/internal/handlers/tools"
	wsHandler "voltride-service/internal/handlers/ws"
	"voltride-service/internal/middleware"
	"voltride-service/internal/pkg/jwt"
	"voltride-service/internal/pkg/session"
	"voltride-service/internal/repository/postgres"
	authService "voltride-service/internal/service/auth"
	blogService "voltride-service/internal/service/blog"
	bookingService "voltride-service/internal/service/booking"
	catalogService "voltride-service/internal/service/catalog"
	dashboardService "voltride-service/internal/service/dashboard"
	dealerService "voltride-service/internal/service/dealer"
	"voltride-service/internal/service/email"
	faqService "voltride-service/internal/service/faq"
	leadService "voltride-service/internal/service/lead"
	"voltride-service/internal/service/notify"
	"voltride-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	httpServer *http.Server
	database   *postgres.DB
	cancelBg   context.CancelFunc
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		cfg:    cfg,
		engine: gin.New(),
		logger: logger,
	}
}

// Start wires the full dependency graph and begins serving. It blocks until
// the HTTP listener stops.
func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL: app pool plus elevated pool for public-form inserts -----
	appPool, err := db.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	elevatedPool := appPool
	if s.cfg.DatabaseAdminURL != "" && s.cfg.DatabaseAdminURL != s.cfg.DatabaseURL {
		elevatedPool, err = db.Connect(ctx, s.cfg.DatabaseAdminURL)
		if err != nil {
			return fmt.Errorf("failed to connect elevated PostgreSQL pool: %w", err)
		}
	} else {
		s.logger.Warn("no elevated database DSN configured, public-form inserts use the app pool")
	}

	database := postgres.NewDB(appPool, elevatedPool)
	s.database = database

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s.logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))

	// ----- Auth plumbing -----
	jwtManager := jwt.NewManager(jwt.Config{
		Secret:   s.cfg.JWTSecret,
		Issuer:   "voltride-service",
		Audience: "voltride-admin",
		TTL:      24 * time.Hour,
	})
	sessionManager := session.NewManager(redisClient)
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Repositories -----
	leadRepo := postgres.NewLeadRepository(database)
	bookingRepo := postgres.NewBookingRepository(database)
	catalogRepo := postgres.NewCatalogRepository(database)
	dealerRepo := postgres.NewDealerRepository(database)
	blogRepo := postgres.NewBlogRepository(database)
	faqRepo := postgres.NewFAQRepository(database)
	adminRepo := postgres.NewAdminRepository(database)

	// ----- Background workers -----
	bgCtx, cancelBg := context.WithCancel(context.Background())
	s.cancelBg = cancelBg

	sender := email.NewSMTPSender(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
		s.cfg.SMTPFromName,
		s.cfg.SMTPSecure,
	)
	mailer := notify.NewMailer(sender, s.logger, 64)
	go mailer.Run(bgCtx)

	hub := websocket.NewHub(jwtManager, sessionManager, s.logger)
	go hub.Run(bgCtx)

	// ----- Services -----
	authSvc := authService.NewService(adminRepo, jwtManager, sessionManager, rateLimiter, s.logger)
	leadSvc := leadService.NewService(leadRepo, catalogRepo, mailer, hub, s.cfg.SalesEmail, s.logger)
	bookingSvc := bookingService.NewService(bookingRepo, dealerRepo, catalogRepo, mailer, hub, s.cfg.SalesEmail, s.logger)
	catalogSvc := catalogService.NewService(catalogRepo, s.logger)
	dealerSvc := dealerService.NewService(dealerRepo, s.logger)
	blogSvc := blogService.NewService(blogRepo, s.logger)
	faqSvc := faqService.NewService(faqRepo, s.logger)
	dashboardSvc := dashboardService.NewService(leadRepo, bookingRepo, catalogRepo, dealerRepo, blogRepo, s.logger)

	// ----- Bootstrap admin -----
	bootCtx, cancelBoot := context.WithTimeout(ctx, 30*time.Second)
	if err := authSvc.EnsureBootstrapAdmin(bootCtx, s.cfg.BootstrapAdminEmail, s.cfg.BootstrapAdminPassword, s.cfg.BootstrapAdminName); err != nil {
		s.logger.Error("failed to bootstrap admin account", zap.Error(err))
	}
	cancelBoot()

	// ----- Handlers -----
	handlers := &Handlers{
		Lead:      leadHandler.NewLeadHandler(leadSvc),
		Booking:   bookingHandler.NewBookingHandler(bookingSvc),
		Catalog:   catalogHandler.NewCatalogHandler(catalogSvc),
		Dealer:    dealerHandler.NewDealerHandler(dealerSvc),
		Blog:      blogHandler.NewBlogHandler(blogSvc),
		FAQ:       faqHandler.NewFAQHandler(faqSvc),
		Auth:      authHandler.NewAuthHandler(authSvc),
		Dashboard: dashboardHandler.NewDashboardHandler(dashboardSvc),
		Tools:     toolsHandler.NewToolsHandler(),
		WS:        wsHandler.NewWebSocketHandler(hub, s.logger),

		AuthMiddleware: middleware.NewAuthMiddleware(authSvc),
		RateLimiter:    rateLimiter,
	}

	s.engine.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingMiddleware(s.logger),
		middleware.CORSMiddleware(s.cfg.AppURL),
	)
	SetupRouter(s.engine, s.logger, handlers)

	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	s.logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr), zap.String("env", s.cfg.AppEnv))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, stops the background workers and
// closes the pools.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	if s.cancelBg != nil {
		s.cancelBg()
	}
	if s.database != nil {
		s.database.Close()
	}
	return err
}
