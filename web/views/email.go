package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/modules/booking"
)

// BookingConfirmationEmail renders the HTML body of the confirmation email
// sent after a booking is placed.
func BookingConfirmationEmail(params booking.ConfirmationParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<html>
<body style="font-family: sans-serif; color: #1a1a1a;">
<h2>Booking confirmed</h2>
<p>Dear %s,</p>
<p>Your stay is booked. Here are the details:</p>
<table cellpadding="4">
<tr><td>Room</td><td>%s</td></tr>
<tr><td>Check-in</td><td>%s</td></tr>
<tr><td>Check-out</td><td>%s</td></tr>
<tr><td>Nights</td><td>%d</td></tr>
<tr><td>Total</td><td>%s</td></tr>
</table>
<p>We look forward to welcoming you.</p>
</body>
</html>
`,
			esc(params.GuestName), esc(params.RoomNumber),
			formatDate(params.CheckIn), formatDate(params.CheckOut),
			params.Nights, formatMoney(params.TotalPrice))
		return err
	})
}
