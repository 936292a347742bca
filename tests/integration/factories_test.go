//go:build integration

package integration

import (
	"fmt"
	"testing"

	"github.com/confhall/registration-api/internal/models"
	"github.com/confhall/registration-api/internal/repository"
	"github.com/confhall/registration-api/internal/service"
	"github.com/stretchr/testify/require"
)

var userCounter int

func createTestUser(t *testing.T) *models.User {
	t.Helper()
	userCounter++
	user := &models.User{
		Email:    fmt.Sprintf("user-%03d@test.com", userCounter),
		Password: "irrelevant-hash",
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func createTestEnrollment(t *testing.T, userID uint) *models.Enrollment {
	t.Helper()
	enrollment := &models.Enrollment{
		Name:   "Test Attendee",
		CPF:    "12345678900",
		UserID: userID,
	}
	require.NoError(t, testDB.Create(enrollment).Error)
	return enrollment
}

func createTestTicket(t *testing.T, enrollmentID uint, status models.TicketStatus, includesHotel bool) *models.Ticket {
	t.Helper()
	ticketType := &models.TicketType{
		Name:          "Presencial",
		Price:         600,
		IncludesHotel: includesHotel,
	}
	require.NoError(t, testDB.Create(ticketType).Error)

	ticket := &models.Ticket{
		TicketTypeID: ticketType.ID,
		EnrollmentID: enrollmentID,
		Status:       status,
	}
	require.NoError(t, testDB.Create(ticket).Error)
	return ticket
}

// createPaidHotelUser builds user + enrollment + PAID hotel ticket in one go.
func createPaidHotelUser(t *testing.T) *models.User {
	t.Helper()
	user := createTestUser(t)
	enrollment := createTestEnrollment(t, user.ID)
	createTestTicket(t, enrollment.ID, models.StatusPaid, true)
	return user
}

func createTestHotel(t *testing.T, roomCount int) *models.Hotel {
	t.Helper()
	hotel := &models.Hotel{Name: "Copacabana Palace", Image: "https://example.com/hotel.jpg"}
	require.NoError(t, testDB.Create(hotel).Error)

	for i := 0; i < roomCount; i++ {
		room := &models.Room{
			Name:     fmt.Sprintf("%d01", i+1),
			Capacity: 2,
			HotelID:  hotel.ID,
		}
		require.NoError(t, testDB.Create(room).Error)
	}

	require.NoError(t, testDB.Preload("Rooms").First(hotel, hotel.ID).Error)
	return hotel
}

func newBookingService() service.BookingService {
	return service.NewBookingService(
		repository.NewBookingRepository(testDB),
		repository.NewHotelRepository(testDB),
		repository.NewTicketRepository(testDB),
		nil,
	)
}

func newHotelService() service.HotelService {
	return service.NewHotelService(
		repository.NewHotelRepository(testDB),
		repository.NewTicketRepository(testDB),
	)
}

func newPaymentService() service.PaymentService {
	return service.NewPaymentService(
		repository.NewPaymentRepository(testDB),
		repository.NewTicketRepository(testDB),
		repository.NewEnrollmentRepository(testDB),
		nil,
	)
}

func newTicketService() service.TicketService {
	return service.NewTicketService(
		repository.NewTicketRepository(testDB),
		repository.NewEnrollmentRepository(testDB),
	)
}
