package repository

import (
	"sync"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
)

// BookingRepository holds the in-memory booking collection in submission
// order. Bookings are never mutated or deleted; there is no cancellation
// flow.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewBookingRepository builds an empty booking store.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Insert appends the booking to the collection.
func (r *BookingRepository) Insert(booking models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
}

// List returns every booking in submission order.
func (r *BookingRepository) List() []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// ListByRoom returns the bookings for the given room in submission order.
func (r *BookingRepository) ListByRoom(roomID string) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out
}

// FindSlot returns the booking occupying the given room, date and start
// slot, or nil when the slot is free. Room/date/start is the uniqueness key
// behind the double-booking guard.
func (r *BookingRepository) FindSlot(roomID, date, startTime string) *models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.bookings {
		b := r.bookings[i]
		if b.RoomID == roomID && b.Date == date && b.StartTime == startTime {
			return &b
		}
	}
	return nil
}
