package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"serenityhaven/internal/config"
	"serenityhaven/internal/database"
	"serenityhaven/internal/domain"
	"serenityhaven/internal/notification"
	"serenityhaven/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := db.AutoMigrate(&notification.Notification{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := repository.EnsureNoOverbookingConstraint(db); err != nil {
		log.Fatal("constraint setup failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM customer_notes")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM rooms")

	ctx := context.Background()

	// ================== STAFF ==================
	log.Println("Creating staff accounts...")
	staffRepo := repository.NewStaffRepository(db)

	db.Exec("DELETE FROM staff")

	for _, acct := range []struct {
		email, password, name, role string
	}{
		{"admin@serenityhaven.example", "admin123", "Hotel Admin", domain.RoleAdmin},
		{"frontdesk@serenityhaven.example", "frontdesk123", "Front Desk", domain.RoleStaff},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(acct.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hash failed:", err)
		}
		if err := staffRepo.Create(ctx, &domain.Staff{
			Email:        acct.email,
			PasswordHash: string(hash),
			Name:         acct.name,
			Role:         acct.role,
		}); err != nil {
			log.Fatal("staff seed failed:", err)
		}
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	roomRepo := repository.NewRoomRepository(db)

	seaViewRate := 185.0
	roomsSeed := []domain.Room{
		{Name: "Garden Standard", Description: "Ground floor, garden view", RoomType: domain.RoomStandard, RoomNumber: 101, Floor: 1, Capacity: 2, BasePrice: 95, IsAvailable: true},
		{Name: "Garden Standard Twin", Description: "Two single beds", RoomType: domain.RoomStandard, RoomNumber: 102, Floor: 1, Capacity: 2, BasePrice: 95, IsAvailable: true},
		{Name: "Sea View Deluxe", Description: "Balcony over the bay", RoomType: domain.RoomDeluxe, RoomNumber: 201, Floor: 2, Capacity: 3, BasePrice: 160, DynamicPrice: &seaViewRate, IsAvailable: true},
		{Name: "Serenity Suite", Description: "Separate living room, bathtub", RoomType: domain.RoomSuite, RoomNumber: 301, Floor: 3, Capacity: 4, BasePrice: 290, IsAvailable: true},
		{Name: "Family Retreat", Description: "Two bedrooms, kitchenette", RoomType: domain.RoomFamily, RoomNumber: 302, Floor: 3, Capacity: 6, BasePrice: 240, IsAvailable: true},
	}
	for i := range roomsSeed {
		if err := roomRepo.Create(ctx, &roomsSeed[i]); err != nil {
			log.Fatal("room seed failed:", err)
		}
	}

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	customerRepo := repository.NewCustomerRepository(db)

	customersSeed := []domain.Customer{
		{FirstName: "Amelia", LastName: "Hart", Email: "amelia.hart@example.com", Phone: "+44 20 7946 0001", Nationality: "British", City: "London", Country: "UK", IsVip: true},
		{FirstName: "Diego", LastName: "Moreno", Email: "diego.moreno@example.com", Phone: "+34 91 123 4567", Nationality: "Spanish", City: "Madrid", Country: "Spain"},
		{FirstName: "Yuki", LastName: "Tanaka", Email: "yuki.tanaka@example.com", Phone: "+81 3 1234 5678", Nationality: "Japanese", City: "Osaka", Country: "Japan"},
	}
	for i := range customersSeed {
		if err := customerRepo.Create(ctx, &customersSeed[i]); err != nil {
			log.Fatal("customer seed failed:", err)
		}
	}

	if err := customerRepo.AddNote(ctx, &domain.CustomerNote{
		CustomerID:  customersSeed[0].ID,
		Note:        "Prefers a high floor, away from the elevator.",
		CreatedBy:   "frontdesk",
		NoteType:    domain.NoteSpecialRequest,
		Priority:    domain.PriorityNormal,
		IsImportant: true,
	}); err != nil {
		log.Fatal("note seed failed:", err)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	bookingRepo := repository.NewBookingRepository(db)

	checkIn := domain.Midnight(time.Now().AddDate(0, 0, 14))
	checkOut := checkIn.AddDate(0, 0, 3)
	stay := &domain.Booking{
		RoomID:           roomsSeed[2].ID,
		CustomerID:       customersSeed[0].ID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Status:           domain.BookingConfirmed,
		TotalPrice:       3 * seaViewRate,
		GuestCount:       2,
		BookingSource:    "direct",
		IsRefundable:     true,
		BookingReference: "BK" + checkIn.Format("20060102") + "5eedc0ffee42",
		SpecialRequests:  "Late arrival, around 23:00.",
	}
	if err := bookingRepo.Create(ctx, stay); err != nil {
		log.Fatal("booking seed failed:", err)
	}

	log.Printf("seed complete: staff=2 rooms=%d customers=%d bookings=1",
		len(roomsSeed), len(customersSeed))
}
