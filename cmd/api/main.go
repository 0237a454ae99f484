package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"serenityhaven/internal/cache"
	"serenityhaven/internal/config"
	"serenityhaven/internal/database"
	"serenityhaven/internal/middleware"
	"serenityhaven/internal/modules/auth"
	"serenityhaven/internal/modules/booking"
	"serenityhaven/internal/modules/customer"
	"serenityhaven/internal/modules/payment"
	"serenityhaven/internal/modules/rooms"
	"serenityhaven/internal/notification"
	jwtsvc "serenityhaven/internal/pkg/jwt"
	"serenityhaven/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	staffRepo := repository.NewStaffRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	var roomCache *cache.Cache
	if cfg.RedisAddr != "" {
		roomCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	notifier := notification.NewService(db)

	authService := auth.NewService(staffRepo, j)
	authHandler := auth.NewHandler(authService)

	roomService := rooms.NewService(roomRepo, bookingRepo, roomCache, cfg.RoomCacheTTL)
	roomHandler := rooms.NewHandler(roomService)

	customerService := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerService)

	bookingService := booking.NewService(
		bookingRepo,
		roomService,
		customerRepo,
		notifier,
		booking.Policy{
			FullRefundDays:       cfg.Cancellation.FullRefundDays,
			PartialRefundDays:    cfg.Cancellation.PartialRefundDays,
			PartialRefundPercent: cfg.Cancellation.PartialRefundPercent,
		},
	)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo)
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		roomHandler.RegisterPublicRoutes(v1)

		// staff
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
		}

		// admin
		admin := v1.Group("/")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			authHandler.RegisterAdminRoutes(admin)
			roomHandler.RegisterAdminRoutes(admin)
			customerHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
