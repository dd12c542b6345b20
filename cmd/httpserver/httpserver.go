// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/bookingdelivery"
	"github.com/go-hanka/fit-studio/internal/bookingrepo"
	"github.com/go-hanka/fit-studio/internal/bookingservice"
	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/internal/lessondelivery"
	"github.com/go-hanka/fit-studio/internal/lessonrepo"
	"github.com/go-hanka/fit-studio/internal/lessonservice"
	"github.com/go-hanka/fit-studio/internal/middleware"
	"github.com/go-hanka/fit-studio/internal/paymentdelivery"
	"github.com/go-hanka/fit-studio/internal/paymentrepo"
	"github.com/go-hanka/fit-studio/internal/paymentservice"
	"github.com/go-hanka/fit-studio/internal/sessiondelivery"
	"github.com/go-hanka/fit-studio/internal/sessionrepo"
	"github.com/go-hanka/fit-studio/internal/sessionservice"
	"github.com/go-hanka/fit-studio/internal/topupdelivery"
	"github.com/go-hanka/fit-studio/internal/topuprepo"
	"github.com/go-hanka/fit-studio/internal/topupservice"
	"github.com/go-hanka/fit-studio/internal/userdelivery"
	"github.com/go-hanka/fit-studio/internal/userrepo"
	"github.com/go-hanka/fit-studio/internal/userservice"
	"github.com/go-hanka/fit-studio/pkg/configpkg"
	"github.com/go-hanka/fit-studio/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)
	lessonRepo := lessonrepo.NewRepoPGS(conn)
	bookingRepo := bookingrepo.NewRepoPGS(conn)
	topUpRepo := topuprepo.NewRepoPGS(conn)
	paymentRepo := paymentrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	lessonService := lessonservice.New(lessonRepo)
	bookingService := bookingservice.New(bookingRepo, lessonService, userService)
	topUpService := topupservice.New(topUpRepo, userService, config)
	paymentService := paymentservice.New(paymentRepo, userService)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	lessonHandler := lessondelivery.NewHandler(lessonService)
	bookingHandler := bookingdelivery.NewHandler(bookingService)
	topUpHandler := topupdelivery.NewHandler(topUpService)
	paymentHandler := paymentdelivery.NewHandler(paymentService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)
	engine.GET("/slots", lessonHandler.ListUpcoming)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/users/me", userHandler.Me)

	authRoutes.POST("/bookings", bookingHandler.Create)
	authRoutes.GET("/bookings", bookingHandler.List)
	authRoutes.GET("/bookings/:id", bookingHandler.Get)
	authRoutes.POST("/bookings/:id/confirm", bookingHandler.Confirm)
	authRoutes.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	authRoutes.POST("/topups", topUpHandler.Create)
	authRoutes.GET("/topups", topUpHandler.List)
	authRoutes.GET("/topups/:id/qr", topUpHandler.QR)

	authRoutes.POST("/payments", paymentHandler.Create)
	authRoutes.GET("/payments", paymentHandler.List)
	authRoutes.GET("/payments/:id/qr", paymentHandler.QR)

	instructorRoutes := engine.Group("/").Use(
		middleware.AuthMiddleware(sessionService.TokenMaker),
		middleware.RoleRequired(userService, domain.RoleInstructor),
	)

	instructorRoutes.POST("/lessons", lessonHandler.CreateLesson)
	instructorRoutes.GET("/lessons", lessonHandler.ListLessons)
	instructorRoutes.PATCH("/lessons/:id", lessonHandler.UpdateLesson)
	instructorRoutes.DELETE("/lessons/:id", lessonHandler.DeleteLesson)
	instructorRoutes.POST("/slots", lessonHandler.CreateSlot)
	instructorRoutes.DELETE("/slots/:id", lessonHandler.DeleteSlot)

	// The pending list lives under /instructor because gin cannot route
	// /topups/pending next to /topups/:id.
	instructorRoutes.GET("/instructor/topups", topUpHandler.ListPending)
	instructorRoutes.POST("/topups/:id/approve", topUpHandler.Approve)
	instructorRoutes.POST("/topups/:id/reject", topUpHandler.Reject)

	instructorRoutes.POST("/payments/:id/confirm", paymentHandler.Confirm)
	instructorRoutes.POST("/payments/:id/reject", paymentHandler.Reject)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("role", userdelivery.ValidRole)
		if err != nil {
			return nil, errors.New("cannot register role validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
