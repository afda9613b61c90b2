package store

import (
	"sync"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// BookingStore holds reservation records and maintains a running total-revenue
// accumulator over bookings whose payment status is paid.
//
// The accumulator is adjusted incrementally: Set recomputes it from scratch, Add
// credits newly paid bookings, and Update reconciles only when the payment status
// changed between the old and new record. Remove historically did NOT reconcile,
// leaving the accumulator overstating revenue after a paid booking is deleted;
// that behavior is kept by default and can be corrected by constructing the store
// with reconcileRemovals set.
type BookingStore struct {
	mu                sync.RWMutex
	bookings          []models.Booking
	totalRevenue      float64
	reconcileRemovals bool
}

// NewBookingStore creates an empty booking store. reconcileRemovals selects
// whether Remove subtracts paid amounts from the revenue accumulator.
func NewBookingStore(reconcileRemovals bool) *BookingStore {
	return &BookingStore{reconcileRemovals: reconcileRemovals}
}

// List returns all bookings in insertion order.
func (s *BookingStore) List() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Get looks up a booking by identifier.
func (s *BookingStore) Get(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// TotalRevenue returns the running paid-revenue accumulator.
func (s *BookingStore) TotalRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalRevenue
}

// Set replaces all bookings and recomputes the revenue accumulator from the paid
// subset.
func (s *BookingStore) Set(bookings []models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]models.Booking(nil), bookings...)
	s.totalRevenue = 0
	for _, b := range s.bookings {
		if b.PaymentStatus == models.PaymentStatusPaid {
			s.totalRevenue += b.TotalAmount
		}
	}
}

// Add appends a booking and credits its amount when already paid.
func (s *BookingStore) Add(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	if b.PaymentStatus == models.PaymentStatusPaid {
		s.totalRevenue += b.TotalAmount
	}
}

// Update replaces the booking whose identifier matches and reconciles revenue
// when the payment status changed. A booking that stays paid with a different
// amount does not adjust the accumulator; callers own the amount arithmetic.
func (s *BookingStore) Update(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != b.ID {
			continue
		}
		old := s.bookings[i]
		s.bookings[i] = b
		if old.PaymentStatus != b.PaymentStatus {
			if b.PaymentStatus == models.PaymentStatusPaid {
				s.totalRevenue += b.TotalAmount
			} else if old.PaymentStatus == models.PaymentStatusPaid {
				s.totalRevenue -= old.TotalAmount
			}
		}
		return
	}
}

// Remove filters out the booking with the given identifier. The revenue
// accumulator is only adjusted when the store was built with reconcileRemovals.
func (s *BookingStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.ID != id {
			kept = append(kept, b)
			continue
		}
		if s.reconcileRemovals && b.PaymentStatus == models.PaymentStatusPaid {
			s.totalRevenue -= b.TotalAmount
		}
	}
	s.bookings = kept
}

// ForUser returns the bookings whose user reference matches id, in insertion
// order.
func (s *BookingStore) ForUser(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// Len reports the number of bookings.
func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
