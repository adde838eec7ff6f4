package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/hdcode14/otpbs-exploreease/internal/auth"
	"github.com/hdcode14/otpbs-exploreease/internal/booking"
	"github.com/hdcode14/otpbs-exploreease/internal/cache"
	"github.com/hdcode14/otpbs-exploreease/internal/catalog"
	"github.com/hdcode14/otpbs-exploreease/internal/config"
	"github.com/hdcode14/otpbs-exploreease/internal/document"
	"github.com/hdcode14/otpbs-exploreease/internal/payment"
	"github.com/hdcode14/otpbs-exploreease/internal/refund"
	"github.com/hdcode14/otpbs-exploreease/internal/user"
	"github.com/hdcode14/otpbs-exploreease/internal/wishlist"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, c *cache.Cache) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitTTL))

	RegisterValidators()

	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	wishlistRepo := wishlist.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	refundRepo := refund.NewRepository(db)

	userService := user.NewService(userRepo, cfg.JWTSecret, cfg.AdminSecretKey)
	catalogService := catalog.NewService(catalogRepo, c)
	wishlistService := wishlist.NewService(wishlistRepo, catalogRepo)
	bookingService := booking.NewService(bookingRepo, catalogRepo)
	paymentService := payment.NewService(paymentRepo, bookingRepo)
	refundService := refund.NewService(refundRepo, bookingRepo)

	userHandler := user.NewHandler(userService)
	catalogHandler := catalog.NewHandler(catalogService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentService)
	refundHandler := refund.NewHandler(refundService)
	documentHandler := document.NewHandler(bookingService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	router.GET("/packages", catalogHandler.ListPackages)
	router.GET("/packages/featured", catalogHandler.FeaturedPackages)
	router.GET("/packages/compare", catalogHandler.ComparePackages)
	router.GET("/packages/:packageID", catalogHandler.GetPackage)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/wishlist", wishlistHandler.List)
		protected.GET("/wishlist/ids", wishlistHandler.IDs)
		protected.GET("/wishlist/:packageID", wishlistHandler.Check)
		protected.POST("/wishlist/:packageID", wishlistHandler.Add)
		protected.DELETE("/wishlist/:packageID", wishlistHandler.Remove)

		protected.POST("/bookings", bookingHandler.Create)
		protected.GET("/bookings", bookingHandler.MyBookings)
		protected.GET("/bookings/:bookingID", bookingHandler.GetBooking)
		protected.POST("/bookings/:bookingID/cancel", refundHandler.CancelBooking)

		protected.POST("/payments", paymentHandler.Create)
		protected.POST("/bookings/:bookingID/confirm", paymentHandler.Confirm)
		protected.GET("/bookings/:bookingID/payment", paymentHandler.GetByBooking)

		protected.GET("/bookings/:bookingID/invoice", documentHandler.Invoice)
		protected.GET("/bookings/:bookingID/eticket", documentHandler.ETicket)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireAdmin())
	{
		admin.GET("/stats", bookingHandler.DashboardStats)
		admin.GET("/bookings", bookingHandler.RecentBookings)
		admin.GET("/users", userHandler.ListUsers)
		admin.POST("/users/:userID/toggle-admin", userHandler.ToggleAdmin)

		admin.GET("/packages", catalogHandler.AdminListPackages)
		admin.POST("/packages", catalogHandler.CreatePackage)
		admin.PUT("/packages/:packageID", catalogHandler.UpdatePackage)
		admin.DELETE("/packages/:packageID", catalogHandler.DeletePackage)
		admin.POST("/packages/:packageID/toggle", catalogHandler.TogglePackage)

		admin.GET("/refunds", refundHandler.ListRequests)
		admin.POST("/refunds/:requestID", refundHandler.ProcessRequest)

		admin.GET("/report", documentHandler.Report)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// graceful shutdown window used by main
const ShutdownTimeout = 30 * time.Second
