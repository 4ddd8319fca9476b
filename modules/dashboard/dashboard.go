// Package dashboard aggregates operational stats across rooms, bookings,
// payments and meal charges.
package dashboard

import "time"

// Stats is the aggregate snapshot the dashboard renders.
type Stats struct {
	TotalRooms         int     `json:"total_rooms"`
	OccupiedRooms      int     `json:"occupied_rooms"`
	VacantRooms        int     `json:"vacant_rooms"`
	OccupancyRate      float64 `json:"occupancy_rate"` // percent, two decimals
	TotalGuests        int64   `json:"total_guests"`
	TotalBookings      int64   `json:"total_bookings"`
	TotalRevenue       float64 `json:"total_revenue"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	PaymentsToday      int64   `json:"payments_today"`
	MealsOrdered       int64   `json:"meals_ordered"`

	RecentBookings []RecentBooking `json:"recent_bookings"`
}

// RecentBooking is one row of the recent-bookings panel, denormalized for
// display.
type RecentBooking struct {
	GuestName  string    `json:"guest_name"`
	RoomNumber string    `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
}
