package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/store"
)

func TestFilterTours_BeachCategory(t *testing.T) {
	tours := store.SeedTours()

	got := FilterTours(tours, "", models.CategoryBeach, "")
	require.Len(t, got, 1)
	assert.Equal(t, "Tropical Paradise Adventure", got[0].Title)
	assert.Equal(t, 1299.0, got[0].Price)
}

func TestFilterTours_UnionOverCategoriesEqualsUnfiltered(t *testing.T) {
	tours := store.SeedTours()

	total := 0
	for _, c := range models.Categories {
		for _, got := range FilterTours(tours, "", c, "") {
			assert.Equal(t, c, got.Category)
			total++
		}
	}
	assert.Equal(t, len(tours), total)
	assert.Len(t, FilterTours(tours, "", "", ""), len(tours))
}

func TestFilterTours_QueryIsCaseInsensitive(t *testing.T) {
	tours := store.SeedTours()

	byTitle := FilterTours(tours, "MOUNTAIN", "", "")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "2", byTitle[0].ID)

	byDestination := FilterTours(tours, "kenya", "", "")
	require.Len(t, byDestination, 1)
	assert.Equal(t, "4", byDestination[0].ID)
}

func TestFilterTours_PriceBands(t *testing.T) {
	tours := store.SeedTours()

	assert.Empty(t, FilterTours(tours, "", "", PriceBandLow))

	medium := FilterTours(tours, "", "", PriceBandMedium)
	require.Len(t, medium, 2) // 899 and 756

	high := FilterTours(tours, "", "", PriceBandHigh)
	require.Len(t, high, 2) // 1299 and 1150

	// Predicates AND together.
	got := FilterTours(tours, "alps", models.CategoryAdventure, PriceBandMedium)
	require.Len(t, got, 1)
	assert.Equal(t, "Mountain Expedition", got[0].Title)
}

func TestFilterBookings(t *testing.T) {
	bookings := store.SeedBookings()

	byEmail := FilterBookings(bookings, "JANE@", "")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "2", byEmail[0].ID)

	pending := FilterBookings(bookings, "", models.BookingStatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "Cultural Heritage Tour", pending[0].TourTitle)

	assert.Empty(t, FilterBookings(bookings, "john", models.BookingStatusCancelled))
}

func TestCategoryDistribution(t *testing.T) {
	dist := CategoryDistribution(store.SeedTours())
	require.Len(t, dist, 4)
	for _, bucket := range dist {
		assert.Equal(t, 1, bucket.Count)
		assert.InDelta(t, 0.25, bucket.Share, 1e-9)
	}
	assert.Empty(t, CategoryDistribution(nil))
}

func TestBookingStatusCounts(t *testing.T) {
	counts := BookingStatusCounts(store.SeedBookings())
	require.Len(t, counts, 4)
	assert.Equal(t, StatusCount{Status: models.BookingStatusConfirmed, Count: 2}, counts[0])
	assert.Equal(t, StatusCount{Status: models.BookingStatusPending, Count: 1}, counts[1])
	assert.Equal(t, StatusCount{Status: models.BookingStatusCancelled, Count: 0}, counts[2])
	assert.Equal(t, StatusCount{Status: models.BookingStatusCompleted, Count: 0}, counts[3])
}

func TestTopToursAndDestinations(t *testing.T) {
	tours := store.SeedTours()
	bookings := store.SeedBookings()

	top := TopTours(tours, bookings, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].BookingCount)
	// One booking each; ties keep catalog order.
	assert.Equal(t, "1", top[0].Tour.ID)
	assert.Equal(t, "2", top[1].Tour.ID)

	dests := TopDestinations(tours, bookings, 8)
	require.Len(t, dests, 4)
	assert.Equal(t, "Maldives", dests[0].Destination)
	assert.Equal(t, 2598.0, dests[0].Revenue)
	assert.Equal(t, "Kenya", dests[3].Destination)
	assert.Zero(t, dests[3].Bookings)
}

func TestRecentBookings(t *testing.T) {
	recent := RecentBookings(store.SeedBookings(), 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].ID) // created 2024-01-22
	assert.Equal(t, "1", recent[1].ID) // created 2024-01-20
}

func TestRevenueAggregates(t *testing.T) {
	bookings := store.SeedBookings()

	assert.Equal(t, 3497.0, TotalRevenue(bookings))
	assert.InDelta(t, 1748.5, AverageBookingValue(bookings), 1e-9)
	assert.Zero(t, AverageBookingValue(nil))
}

func TestMonthlyRevenue(t *testing.T) {
	bookings := store.SeedBookings()
	extra := bookings[0]
	extra.ID = "4"
	extra.TotalAmount = 1000
	extra.CreatedAt = time.Date(2024, 2, 3, 12, 0, 0, 0, time.UTC)
	bookings = append(bookings, extra)

	months := MonthlyRevenue(bookings)
	require.Len(t, months, 2)
	assert.Equal(t, "Jan 2024", months[0].Month)
	assert.Equal(t, 3497.0, months[0].Revenue)
	assert.Equal(t, 3, months[0].Bookings)
	assert.Equal(t, "Feb 2024", months[1].Month)
	assert.Equal(t, 1000.0, months[1].Revenue)
}
