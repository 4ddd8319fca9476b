package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/modules/room"
)

// RoomListPage renders the room inventory.
func RoomListPage(params room.ListPageParams) templ.Component {
	return layout("Rooms", func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Rooms</h1>
<a class="button" href="/rooms/new">Add room</a>
<table>
<thead><tr><th>Number</th><th>Type</th><th>Capacity</th><th>Price</th><th>Status</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, r := range params.Rooms {
			status := "Out of service"
			if r.IsAvailable {
				status = "Available"
			}
			if _, err := fmt.Fprintf(w, `<tr><td><a href="/rooms/%s/edit">%s</a></td><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`+"\n",
				r.ID, esc(r.Number), esc(string(r.Type)), r.Capacity, formatMoney(r.Price), status); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}

// RoomFormPage renders the room create/edit form with inline field
// annotations.
func RoomFormPage(params room.FormPageParams) templ.Component {
	title, action := "Add room", "/rooms"
	if params.Room != nil {
		title, action = "Edit room", "/rooms/"+params.Room.ID.String()
	}

	return layout(title, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s">
`, esc(title), action); err != nil {
			return err
		}

		d, ann, f := room.Descriptor, params.Annotations, params.Form
		if err := textField(w, d, ann, "number", "Room number", "", f.Number); err != nil {
			return err
		}
		if err := selectField(w, d, ann, "room_type", "Room type", f.RoomType, stringOptions(room.Types)); err != nil {
			return err
		}
		if err := textField(w, d, ann, "capacity", "Capacity", "number", f.Capacity); err != nil {
			return err
		}
		if err := textField(w, d, ann, "price", "Price per night", "number", f.Price); err != nil {
			return err
		}
		if err := checkboxField(w, "is_available", "Available for booking", f.IsAvailable); err != nil {
			return err
		}
		if err := textareaField(w, d, ann, "description", "Description", f.Description); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<button type="submit">Save</button>
</form>
`)
		return err
	})
}
