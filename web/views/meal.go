package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/modules/meal"
)

// MealListPage renders the meal charge ledger.
func MealListPage(params meal.ListPageParams) templ.Component {
	return layout("Meals", func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Meal charges</h1>
<a class="button" href="/meals/new">Add charge</a>
<table>
<thead><tr><th>Date</th><th>Meal</th><th>Category</th><th>Qty</th><th>Unit price</th><th>Total</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, tx := range params.Transactions {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`+"\n",
				formatDate(tx.CreatedAt), esc(tx.MealName), esc(tx.Category), tx.Quantity,
				formatMoney(tx.PricePerUnit), formatMoney(tx.TotalPrice)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}

// MealFormPage renders the add-charge form.
func MealFormPage(params meal.FormPageParams) templ.Component {
	return layout("Add meal charge", func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Add meal charge</h1>
<form method="post" action="/meals">
`); err != nil {
			return err
		}

		d, ann, f := meal.Descriptor, params.Annotations, params.Form

		bookingOpts := make([]selectOption, 0, len(params.Bookings))
		for _, b := range params.Bookings {
			bookingOpts = append(bookingOpts, selectOption{
				Value: b.ID.String(),
				Label: fmt.Sprintf("%s to %s (%s)", formatDate(b.CheckIn), formatDate(b.CheckOut), b.Status),
			})
		}

		if err := selectField(w, d, ann, "booking_id", "Booking", f.BookingID, bookingOpts); err != nil {
			return err
		}
		if err := textField(w, d, ann, "meal_name", "Meal", "", f.MealName); err != nil {
			return err
		}
		if err := selectField(w, d, ann, "category", "Category", f.Category, stringOptions(meal.Categories)); err != nil {
			return err
		}
		if err := textField(w, d, ann, "quantity", "Quantity", "number", f.Quantity); err != nil {
			return err
		}
		if err := textField(w, d, ann, "price_per_unit", "Price per unit", "number", f.PricePerUnit); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<button type="submit">Save</button>
</form>
`)
		return err
	})
}
