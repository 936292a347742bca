package service

import (
	"context"

	"github.com/confhall/registration-api/internal/models"
	"gorm.io/gorm"
)

// --- Mock TicketRepository ---

type mockTicketRepo struct {
	findTypesFn       func(ctx context.Context) ([]models.TicketType, error)
	findTypeByIDFn    func(ctx context.Context, id uint) (*models.TicketType, error)
	findFirstByUserFn func(ctx context.Context, userID uint) (*models.Ticket, error)
	findByIDFn        func(ctx context.Context, id uint) (*models.Ticket, error)
	createFn          func(ctx context.Context, ticket *models.Ticket) error
	updateStatusFn    func(ctx context.Context, tx *gorm.DB, ticketID uint, status models.TicketStatus) error
}

func (m *mockTicketRepo) FindTypes(ctx context.Context) ([]models.TicketType, error) {
	return m.findTypesFn(ctx)
}
func (m *mockTicketRepo) FindTypeByID(ctx context.Context, id uint) (*models.TicketType, error) {
	return m.findTypeByIDFn(ctx, id)
}
func (m *mockTicketRepo) FindFirstByUserID(ctx context.Context, userID uint) (*models.Ticket, error) {
	return m.findFirstByUserFn(ctx, userID)
}
func (m *mockTicketRepo) FindByID(ctx context.Context, id uint) (*models.Ticket, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockTicketRepo) Create(ctx context.Context, ticket *models.Ticket) error {
	return m.createFn(ctx, ticket)
}
func (m *mockTicketRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, ticketID uint, status models.TicketStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, tx, ticketID, status)
	}
	return nil
}

// --- Mock EnrollmentRepository ---

type mockEnrollmentRepo struct {
	findByUserIDFn func(ctx context.Context, userID uint) (*models.Enrollment, error)
	createFn       func(ctx context.Context, enrollment *models.Enrollment) error
	updateFn       func(ctx context.Context, enrollment *models.Enrollment) error
}

func (m *mockEnrollmentRepo) FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	return m.findByUserIDFn(ctx, userID)
}
func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return m.createFn(ctx, enrollment)
}
func (m *mockEnrollmentRepo) Update(ctx context.Context, enrollment *models.Enrollment) error {
	return m.updateFn(ctx, enrollment)
}

// --- Mock HotelRepository ---

type mockHotelRepo struct {
	findAllFn         func(ctx context.Context) ([]models.Hotel, error)
	findByIDWithRooms func(ctx context.Context, id uint) (*models.Hotel, error)
	findRoomByIDFn    func(ctx context.Context, id uint) (*models.Room, error)
}

func (m *mockHotelRepo) FindAll(ctx context.Context) ([]models.Hotel, error) {
	return m.findAllFn(ctx)
}
func (m *mockHotelRepo) FindByIDWithRooms(ctx context.Context, id uint) (*models.Hotel, error) {
	return m.findByIDWithRooms(ctx, id)
}
func (m *mockHotelRepo) FindRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	return m.findRoomByIDFn(ctx, id)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	findByUserIDFn      func(ctx context.Context, userID uint) ([]models.Booking, error)
	findByRoomIDFn      func(ctx context.Context, tx *gorm.DB, roomID uint) (*models.Booking, error)
	findByIDAndUserIDFn func(ctx context.Context, id, userID uint) (*models.Booking, error)
	createFn            func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	updateRoomFn        func(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uint) ([]models.Booking, error) {
	return m.findByUserIDFn(ctx, userID)
}
func (m *mockBookingRepo) FindByRoomID(ctx context.Context, tx *gorm.DB, roomID uint) (*models.Booking, error) {
	return m.findByRoomIDFn(ctx, tx, roomID)
}
func (m *mockBookingRepo) FindByIDAndUserID(ctx context.Context, id, userID uint) (*models.Booking, error) {
	return m.findByIDAndUserIDFn(ctx, id, userID)
}
func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return m.createFn(ctx, tx, booking)
}
func (m *mockBookingRepo) UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error {
	return m.updateRoomFn(ctx, tx, bookingID, roomID)
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Mock PaymentRepository ---

type mockPaymentRepo struct {
	findFirstFn func(ctx context.Context, ticketID, userID uint) (*models.Payment, error)
	createFn    func(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
}

func (m *mockPaymentRepo) FindFirstByTicketAndUser(ctx context.Context, ticketID, userID uint) (*models.Payment, error) {
	return m.findFirstFn(ctx, ticketID, userID)
}
func (m *mockPaymentRepo) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return m.createFn(ctx, tx, payment)
}
func (m *mockPaymentRepo) GetDB() *gorm.DB { return nil }

// --- Shared fixtures ---

func paidHotelTicket() *models.Ticket {
	return &models.Ticket{
		ID:           1,
		TicketTypeID: 1,
		EnrollmentID: 1,
		Status:       models.StatusPaid,
		TicketType:   &models.TicketType{ID: 1, Name: "Presencial + Hotel", Price: 600, IncludesHotel: true},
	}
}

func remoteTicket() *models.Ticket {
	return &models.Ticket{
		ID:           2,
		TicketTypeID: 2,
		EnrollmentID: 1,
		Status:       models.StatusPaid,
		TicketType:   &models.TicketType{ID: 2, Name: "Online", Price: 100, IsRemote: true},
	}
}

func reservedHotelTicket() *models.Ticket {
	t := paidHotelTicket()
	t.Status = models.StatusReserved
	return t
}
