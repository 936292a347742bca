package main

import (
	"log"

	"github.com/confhall/registration-api/config"
	"github.com/confhall/registration-api/internal/handler"
	"github.com/confhall/registration-api/internal/middleware"
	"github.com/confhall/registration-api/internal/repository"
	"github.com/confhall/registration-api/internal/service"
	"github.com/confhall/registration-api/pkg/database"
	"github.com/confhall/registration-api/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher is optional: without RABBITMQ_URL the services
	// simply skip publishing.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo)
	ticketSvc := service.NewTicketService(ticketRepo, enrollmentRepo)
	hotelSvc := service.NewHotelService(hotelRepo, ticketRepo)
	bookingSvc := service.NewBookingService(bookingRepo, hotelRepo, ticketRepo, publisher)
	paymentSvc := service.NewPaymentService(paymentRepo, ticketRepo, enrollmentRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "registration-api"})
	})

	auth := middleware.AuthenticateToken(cfg.JWTSecret, sessionRepo)

	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewEnrollmentHandler(enrollmentSvc).RegisterRoutes(e, auth)
	handler.NewTicketHandler(ticketSvc).RegisterRoutes(e, auth)
	handler.NewHotelHandler(hotelSvc).RegisterRoutes(e, auth)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, auth)
	handler.NewPaymentHandler(paymentSvc).RegisterRoutes(e, auth)

	log.Printf("Registration API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
