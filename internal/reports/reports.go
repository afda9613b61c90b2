// Package reports computes derived views over store snapshots. Nothing here is
// persisted or cached; every call is a full rescan of the slices it is given,
// which is fine at seed-data volumes.
package reports

import (
	"sort"
	"strings"

	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// Price bands used by the browse filter.
const (
	PriceBandLow    = "low"    // < 500
	PriceBandMedium = "medium" // 500–999
	PriceBandHigh   = "high"   // >= 1000
)

// FilterTours applies the browse-page predicates: case-insensitive substring
// match on title/destination, exact category, and price band. Empty arguments
// disable their predicate; all active predicates are AND-ed.
func FilterTours(tours []models.Tour, query, category, priceBand string) []models.Tour {
	q := strings.ToLower(query)
	out := make([]models.Tour, 0, len(tours))
	for _, t := range tours {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Destination), q) {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		if priceBand != "" && !inPriceBand(t.Price, priceBand) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func inPriceBand(price float64, band string) bool {
	switch band {
	case PriceBandLow:
		return price < 500
	case PriceBandMedium:
		return price >= 500 && price < 1000
	case PriceBandHigh:
		return price >= 1000
	default:
		return false
	}
}

// FilterBookings applies the booking-management predicates: case-insensitive
// substring match on user name, tour title or user email, plus an optional
// exact status.
func FilterBookings(bookings []models.Booking, query, status string) []models.Booking {
	q := strings.ToLower(query)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if q != "" &&
			!strings.Contains(strings.ToLower(b.UserName), q) &&
			!strings.Contains(strings.ToLower(b.TourTitle), q) &&
			!strings.Contains(strings.ToLower(b.UserEmail), q) {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

// CategoryShare is one bucket of the catalog category histogram.
type CategoryShare struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Share    float64 `json:"share"`
}

// CategoryDistribution counts tours per category, in first-seen order, with each
// bucket's share of the whole catalog.
func CategoryDistribution(tours []models.Tour) []CategoryShare {
	var order []string
	counts := map[string]int{}
	for _, t := range tours {
		if _, seen := counts[t.Category]; !seen {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}
	out := make([]CategoryShare, 0, len(order))
	for _, c := range order {
		share := 0.0
		if len(tours) > 0 {
			share = float64(counts[c]) / float64(len(tours))
		}
		out = append(out, CategoryShare{Category: c, Count: counts[c], Share: share})
	}
	return out
}

// StatusCount is one bucket of the booking-status histogram.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// BookingStatusCounts buckets bookings by status in the fixed chart order.
func BookingStatusCounts(bookings []models.Booking) []StatusCount {
	order := []string{
		models.BookingStatusConfirmed,
		models.BookingStatusPending,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	}
	out := make([]StatusCount, 0, len(order))
	for _, status := range order {
		n := 0
		for _, b := range bookings {
			if b.Status == status {
				n++
			}
		}
		out = append(out, StatusCount{Status: status, Count: n})
	}
	return out
}

// TourBookings pairs a tour with its derived booking count.
type TourBookings struct {
	Tour         models.Tour `json:"tour"`
	BookingCount int         `json:"bookingCount"`
}

// TopTours ranks tours by booking count descending and returns the first n.
// Ties keep catalog order.
func TopTours(tours []models.Tour, bookings []models.Booking, n int) []TourBookings {
	ranked := make([]TourBookings, 0, len(tours))
	for _, t := range tours {
		count := 0
		for _, b := range bookings {
			if b.TourID == t.ID {
				count++
			}
		}
		ranked = append(ranked, TourBookings{Tour: t, BookingCount: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BookingCount > ranked[j].BookingCount
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// DestinationStat is one row of the destination ranking: booking count plus the
// paid revenue attributed to the tour.
type DestinationStat struct {
	Destination string  `json:"destination"`
	Bookings    int     `json:"bookings"`
	Revenue     float64 `json:"revenue"`
}

// TopDestinations ranks tour destinations by booking count descending and
// returns the first n.
func TopDestinations(tours []models.Tour, bookings []models.Booking, n int) []DestinationStat {
	ranked := make([]DestinationStat, 0, len(tours))
	for _, t := range tours {
		stat := DestinationStat{Destination: t.Destination}
		for _, b := range bookings {
			if b.TourID != t.ID {
				continue
			}
			stat.Bookings++
			if b.PaymentStatus == models.PaymentStatusPaid {
				stat.Revenue += b.TotalAmount
			}
		}
		ranked = append(ranked, stat)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Bookings > ranked[j].Bookings
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// RecentBookings returns the n most recent bookings by creation timestamp
// descending.
func RecentBookings(bookings []models.Booking, n int) []models.Booking {
	out := make([]models.Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// TotalRevenue sums the amounts of paid bookings. Unlike the store accumulator
// this is recomputed from the snapshot, so the two can disagree after a paid
// booking was removed from a non-reconciling store.
func TotalRevenue(bookings []models.Booking) float64 {
	var total float64
	for _, b := range bookings {
		if b.PaymentStatus == models.PaymentStatusPaid {
			total += b.TotalAmount
		}
	}
	return total
}

// AverageBookingValue is paid revenue over the number of paid bookings, zero
// when there are none.
func AverageBookingValue(bookings []models.Booking) float64 {
	paid := 0
	for _, b := range bookings {
		if b.PaymentStatus == models.PaymentStatusPaid {
			paid++
		}
	}
	if paid == 0 {
		return 0
	}
	return TotalRevenue(bookings) / float64(paid)
}

// MonthRevenue is one bucket of the monthly revenue series.
type MonthRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// MonthlyRevenue buckets bookings by creation month in chronological order.
// Every booking counts toward the month's booking total; only paid ones count
// toward its revenue.
func MonthlyRevenue(bookings []models.Booking) []MonthRevenue {
	type key struct {
		year  int
		month int
	}
	buckets := map[key]*MonthRevenue{}
	var keys []key
	for _, b := range bookings {
		k := key{b.CreatedAt.Year(), int(b.CreatedAt.Month())}
		bucket, ok := buckets[k]
		if !ok {
			bucket = &MonthRevenue{Month: b.CreatedAt.Format("Jan 2006")}
			buckets[k] = bucket
			keys = append(keys, k)
		}
		bucket.Bookings++
		if b.PaymentStatus == models.PaymentStatusPaid {
			bucket.Revenue += b.TotalAmount
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	out := make([]MonthRevenue, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out
}
