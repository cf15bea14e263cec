package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mentormatch/internal/auth"
	"mentormatch/internal/availability"
	"mentormatch/internal/booking"
	"mentormatch/internal/config"
	"mentormatch/internal/dashboard"
	"mentormatch/internal/db"
	"mentormatch/internal/events"
	"mentormatch/internal/notification"
	"mentormatch/internal/payment"
	"mentormatch/internal/review"
	"mentormatch/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type handlers struct {
	user         *user.Handler
	availability *availability.Handler
	booking      *booking.Handler
	payment      *payment.Handler
	review       *review.Handler
	notification *notification.Handler
	dashboard    *dashboard.Handler
	health       gin.HandlerFunc
}

type Server struct {
	http *http.Server

	Bookings *booking.Service
	Payments *payment.Simulator
	Notifier *notification.Dispatcher
}

// New wires every domain service over database. mailer may be nil, in which
// case no email is sent.
func New(database *sqlx.DB, cfg *config.Config, mailer notification.Mailer, publisher events.Publisher) *Server {
	notifier := notification.NewDispatcher(notification.NewRepository(database), publisher, mailer)

	bookings := booking.NewService(db.NewTxManager(database), booking.NewRepository(), notifier, cfg.MeetingBaseURL)
	payments := payment.NewSimulator(bookings, cfg.PaymentDelay)

	h := handlers{
		user:         user.NewHandler(user.NewService(user.NewRepository(database), cfg.JWTSecret)),
		availability: availability.NewHandler(availability.NewService(availability.NewRepository(database))),
		booking:      booking.NewHandler(bookings),
		payment:      payment.NewHandler(payments),
		review:       review.NewHandler(review.NewService(review.NewRepository(database))),
		notification: notification.NewHandler(notification.NewService(notification.NewRepository(database))),
		dashboard:    dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(database))),
		health:       Health(database),
	}

	return &Server{
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           newRouter(h, cfg),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Bookings: bookings,
		Payments: payments,
		Notifier: notifier,
	}
}

func newRouter(h handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
		RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	router.GET("/health", h.health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	public := router.Group("/auth")
	{
		public.POST("/register", h.user.Register)
		public.POST("/login", h.user.Login)
		public.POST("/refresh", h.user.RefreshToken)
	}

	router.GET("/availability/mentor/:mentorId", h.availability.ListForMentor)
	router.GET("/reviews/mentor/:mentorId", h.review.ListForMentor)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	mentorOnly := auth.RequireRole(auth.RoleMentor)
	menteeOnly := auth.RequireRole(auth.RoleMentee)
	writeLimit := WriteRateLimitMiddleware(cfg.WriteRateLimitRPS, cfg.WriteRateLimitBurst)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", h.user.GetMe)
		protected.PUT("/me/rate", mentorOnly, h.user.UpdateRate)
		protected.GET("/dashboard", h.dashboard.Get)

		protected.POST("/availability", mentorOnly, h.availability.Create)
		protected.GET("/availability/me", mentorOnly, h.availability.ListMine)
		protected.DELETE("/availability/:id", mentorOnly, h.availability.Delete)

		// Role is checked by the booking service so the error carries its own code.
		protected.POST("/bookings", writeLimit, h.booking.Create)
		protected.GET("/bookings/me", h.booking.ListMine)
		protected.GET("/bookings/:id", h.booking.Get)
		protected.PUT("/bookings/:id/cancel", h.booking.Cancel)

		protected.POST("/payments/mock-pay", menteeOnly, writeLimit, h.payment.MockPay)
		protected.POST("/reviews", menteeOnly, h.review.Create)

		protected.GET("/notifications", h.notification.List)
		protected.PUT("/notifications/read-all", h.notification.MarkAllRead)
		protected.PUT("/notifications/:id/read", h.notification.MarkRead)
	}

	return router
}

func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) Start() error {
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains HTTP traffic first, then waits for scheduled payment
// confirmations so none is lost on exit.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.http.Shutdown(ctx)
	payErr := s.Payments.Shutdown(ctx)
	return errors.Join(httpErr, payErr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
