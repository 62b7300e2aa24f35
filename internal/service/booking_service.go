package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

type bookingStore interface {
	Insert(booking models.Booking)
	List() []models.Booking
	ListByRoom(roomID string) []models.Booking
	FindSlot(roomID, date, startTime string) *models.Booking
}

type bookableRoomFinder interface {
	FindByCode(code string) (*models.Room, error)
	ListBookable() []models.Room
}

// BookingServiceConfig bounds the bookable day. Slots are one hour wide.
type BookingServiceConfig struct {
	DayStartHour int
	DayEndHour   int
}

// BookingService maintains the booking collection and enforces the
// one-booking-per-room-slot invariant at the store boundary rather than in
// the slot picker alone.
type BookingService struct {
	bookings  bookingStore
	rooms     bookableRoomFinder
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	config    BookingServiceConfig
}

// NewBookingService constructs a BookingService instance.
func NewBookingService(bookings bookingStore, rooms bookableRoomFinder, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, config BookingServiceConfig) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.DayEndHour <= config.DayStartHour {
		config = BookingServiceConfig{DayStartHour: 8, DayEndHour: 18}
	}
	return &BookingService{
		bookings:  bookings,
		rooms:     rooms,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		config:    config,
	}
}

// Book reserves a one-hour slot for the acting teacher. Only teachers may
// book; faculty-only rooms are closed to public booking; and a slot already
// taken for the same room and date yields a conflict instead of a silent
// duplicate.
func (s *BookingService) Book(ctx context.Context, actor *models.Identity, req models.BookingRequest) (*models.Booking, error) {
	if actor == nil || actor.Role != models.RoleTeacher {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "room booking is limited to teachers")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "room, date, time slot and purpose are required")
	}

	if err := s.validateSlot(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByCode(req.RoomID)
	if err != nil {
		return nil, err
	}
	if room.FacultyOnly {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "faculty-only rooms are not open to booking")
	}

	if taken := s.bookings.FindSlot(room.Code, req.Date, req.StartTime); taken != nil {
		s.metrics.BookingConflict()
		return nil, appErrors.Clone(appErrors.ErrConflict,
			fmt.Sprintf("room %s is already booked on %s at %s", room.Code, req.Date, req.StartTime))
	}

	booking := models.Booking{
		ID:          newBookingID(),
		RoomID:      room.Code,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TeacherName: actor.Name,
		Purpose:     req.Purpose,
	}

	s.bookings.Insert(booking)
	s.metrics.BookingAccepted()
	s.logger.Info("room booked",
		zap.String("id", booking.ID),
		zap.String("room", booking.RoomID),
		zap.String("date", booking.Date),
		zap.String("start", booking.StartTime),
	)

	return &booking, nil
}

// ByRoom returns the bookings for the given room in submission order.
func (s *BookingService) ByRoom(roomID string) []models.Booking {
	return s.bookings.ListByRoom(roomID)
}

// All returns every booking in submission order.
func (s *BookingService) All() []models.Booking {
	return s.bookings.List()
}

// SlotAvailable reports whether the given room slot is still free.
func (s *BookingService) SlotAvailable(roomID, date, startTime string) bool {
	return s.bookings.FindSlot(roomID, date, startTime) == nil
}

// BookableRooms lists the rooms offered in the booking form.
func (s *BookingService) BookableRooms() []models.Room {
	return s.rooms.ListBookable()
}

// Slots returns the fixed hourly slot table the booking form renders.
func (s *BookingService) Slots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, s.config.DayEndHour-s.config.DayStartHour)
	for hour := s.config.DayStartHour; hour < s.config.DayEndHour; hour++ {
		start := fmt.Sprintf("%02d:00", hour)
		end := fmt.Sprintf("%02d:00", hour+1)
		slots = append(slots, models.TimeSlot{
			StartTime: start,
			EndTime:   end,
			Label:     fmt.Sprintf("%s - %s", start, end),
		})
	}
	return slots
}

// validateSlot checks that start/end name a single whole hour inside the
// bookable day.
func (s *BookingService) validateSlot(start, end string) error {
	startHour, ok := slotHour(start)
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, "start time must fall on a whole hour")
	}
	endHour, ok := slotHour(end)
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, "end time must fall on a whole hour")
	}
	if endHour != startHour+1 {
		return appErrors.Clone(appErrors.ErrValidation, "bookings cover exactly one hour")
	}
	if startHour < s.config.DayStartHour || endHour > s.config.DayEndHour {
		return appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("bookable hours run from %02d:00 to %02d:00", s.config.DayStartHour, s.config.DayEndHour))
	}
	return nil
}

// slotHour parses an HH:00 time of day.
func slotHour(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 || parts[1] != "00" {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func newBookingID() string {
	return fmt.Sprintf("BKG-%s", uuid.NewString())
}
