package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/modules/payment"
)

// PaymentListPage renders the payment ledger.
func PaymentListPage(params payment.ListPageParams) templ.Component {
	return layout("Payments", func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Payments</h1>
<a class="button" href="/payments/new">Record payment</a>
<table>
<thead><tr><th>Date</th><th>Amount</th><th>Method</th><th>Reference</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, p := range params.Payments {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`+"\n",
				formatDate(p.PaidAt), formatMoney(p.Amount), esc(p.Method), esc(p.TransactionID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}

// PaymentFormPage renders the record-payment form.
func PaymentFormPage(params payment.FormPageParams) templ.Component {
	return layout("Record payment", func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Record payment</h1>
<form method="post" action="/payments">
`); err != nil {
			return err
		}

		d, ann, f := payment.Descriptor, params.Annotations, params.Form

		bookingOpts := make([]selectOption, 0, len(params.Bookings))
		for _, b := range params.Bookings {
			bookingOpts = append(bookingOpts, selectOption{
				Value: b.ID.String(),
				Label: fmt.Sprintf("%s to %s (%s, %s)", formatDate(b.CheckIn), formatDate(b.CheckOut), formatMoney(b.TotalPrice), b.PaymentStatus),
			})
		}

		if err := selectField(w, d, ann, "booking_id", "Booking", f.BookingID, bookingOpts); err != nil {
			return err
		}
		if err := textField(w, d, ann, "amount", "Amount", "number", f.Amount); err != nil {
			return err
		}
		if err := selectField(w, d, ann, "payment_method", "Method", f.Method, stringOptions(payment.Methods)); err != nil {
			return err
		}
		if err := textField(w, d, ann, "transaction_id", "Transaction reference", "", f.TransactionID); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<button type="submit">Save</button>
</form>
`)
		return err
	})
}
