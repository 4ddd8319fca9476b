package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/modules/booking"
)

// BookingListPage renders the reservations table with lifecycle actions.
func BookingListPage(params booking.ListPageParams) templ.Component {
	return layout("Bookings", func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Bookings</h1>
<a class="button" href="/bookings/new">New booking</a>
<table>
<thead><tr><th>Check-in</th><th>Check-out</th><th>Nights</th><th>Total</th><th>Status</th><th>Payment</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, b := range params.Bookings {
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/bookings/%s/edit">%s</a></td>
<td>%s</td>
<td>%d</td>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td>
`,
				b.ID, formatDate(b.CheckIn), formatDate(b.CheckOut), b.Nights(),
				formatMoney(b.TotalPrice), esc(string(b.Status)), esc(string(b.PaymentStatus))); err != nil {
				return err
			}
			if err := bookingActions(w, b); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "</td>\n</tr>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}

// bookingActions renders the lifecycle buttons valid for the booking's
// current state.
func bookingActions(w io.Writer, b booking.Booking) error {
	action := func(path, label string) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="/bookings/%s/%s" class="inline"><button type="submit">%s</button></form>`+"\n",
			b.ID, path, esc(label))
		return err
	}

	switch b.Status {
	case booking.StatusPending:
		if err := action("check-in", "Check in"); err != nil {
			return err
		}
		return action("no-show", "No show")
	case booking.StatusCheckedIn:
		return action("check-out", "Check out")
	default:
		return nil
	}
}

// BookingFormPage renders the booking form: guest and room selectors, the
// date range and the availability hint.
func BookingFormPage(params booking.FormPageParams) templ.Component {
	title, action := "New booking", "/bookings"
	if params.Booking != nil {
		title, action = "Edit booking", "/bookings/"+params.Booking.ID.String()
	}

	return layout(title, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s">
`, esc(title), action); err != nil {
			return err
		}

		d, ann, f := booking.Descriptor, params.Annotations, params.Form

		guestOpts := make([]selectOption, 0, len(params.Guests))
		for _, g := range params.Guests {
			guestOpts = append(guestOpts, selectOption{Value: g.ID.String(), Label: g.FullName()})
		}
		roomOpts := make([]selectOption, 0, len(params.Rooms))
		for _, r := range params.Rooms {
			roomOpts = append(roomOpts, selectOption{
				Value: r.ID.String(),
				Label: fmt.Sprintf("%s (%s, %s/night)", r.Number, r.Type, formatMoney(r.Price)),
			})
		}

		if err := selectField(w, d, ann, "guest_id", "Guest", f.GuestID, guestOpts); err != nil {
			return err
		}
		if err := selectField(w, d, ann, "room_id", "Room", f.RoomID, roomOpts); err != nil {
			return err
		}
		if err := textField(w, d, ann, "check_in", "Check-in", "date", f.CheckIn); err != nil {
			return err
		}
		if err := textField(w, d, ann, "check_out", "Check-out", "date", f.CheckOut); err != nil {
			return err
		}
		if params.Booking != nil {
			if err := selectField(w, d, ann, "status", "Status", f.Status, stringOptions(booking.Statuses)); err != nil {
				return err
			}
		}
		if err := textareaField(w, d, ann, "notes", "Notes", f.Notes); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<p class="hint">Availability is rechecked on save; see GET /bookings/availability for a live check.</p>
<button type="submit">Save</button>
</form>
`)
		return err
	})
}
