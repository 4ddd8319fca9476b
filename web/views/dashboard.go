package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/modules/dashboard"
)

// DashboardPage renders the operational overview.
func DashboardPage(params dashboard.PageParams) templ.Component {
	s := params.Stats
	return layout("Dashboard", func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Dashboard</h1>
<div class="stats">
<div class="stat"><span class="value">%d</span><span class="label">Rooms</span></div>
<div class="stat"><span class="value">%d</span><span class="label">Occupied</span></div>
<div class="stat"><span class="value">%d</span><span class="label">Vacant</span></div>
<div class="stat"><span class="value">%.2f%%</span><span class="label">Occupancy</span></div>
<div class="stat"><span class="value">%d</span><span class="label">Guests</span></div>
<div class="stat"><span class="value">%d</span><span class="label">Bookings</span></div>
<div class="stat"><span class="value">%s</span><span class="label">Revenue</span></div>
<div class="stat"><span class="value">%s</span><span class="label">Outstanding</span></div>
<div class="stat"><span class="value">%d</span><span class="label">Payments today</span></div>
<div class="stat"><span class="value">%d</span><span class="label">Meals ordered</span></div>
</div>
`,
			s.TotalRooms, s.OccupiedRooms, s.VacantRooms, s.OccupancyRate,
			s.TotalGuests, s.TotalBookings, formatMoney(s.TotalRevenue),
			formatMoney(s.OutstandingBalance), s.PaymentsToday, s.MealsOrdered); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<h2>Recent bookings</h2>
<table>
<thead><tr><th>Guest</th><th>Room</th><th>Check-in</th><th>Check-out</th><th>Status</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, rb := range s.RecentBookings {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`+"\n",
				esc(rb.GuestName), esc(rb.RoomNumber), formatDate(rb.CheckIn), formatDate(rb.CheckOut), esc(rb.Status)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}
