package store

// State is the application-state composition root. It owns every collection and
// is passed by reference from cmd/main to the handlers; there is no package-level
// singleton. The catalog, bookings and user directory are shared across the
// process; wishlists and reviews live in per-browser-session state under
// Sessions.
//
// All collections are independent in-memory slices. Cross-references between them
// (booking→tour, booking→user, wishlist→tour) are by opaque identifier only and
// are not enforced: deleting a tour leaves any bookings and wishlist snapshots
// that reference it dangling.
type State struct {
	Tours    *TourStore
	Bookings *BookingStore
	Users    *UserStore
	Sessions *SessionStates
}

// New creates an empty State. reconcileRevenueOnRemove selects whether booking
// removal subtracts paid amounts from the revenue accumulator; false reproduces
// the historical behavior where it does not.
func New(reconcileRevenueOnRemove bool) *State {
	return &State{
		Tours:    NewTourStore(),
		Bookings: NewBookingStore(reconcileRevenueOnRemove),
		Users:    NewUserStore(),
		Sessions: NewSessionStates(),
	}
}
