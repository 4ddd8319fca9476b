package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/modules/guest"
)

// GuestListPage renders the guest directory.
func GuestListPage(params guest.ListPageParams) templ.Component {
	return layout("Guests", func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Guests</h1>
<a class="button" href="/guests/new">Add guest</a>
<table>
<thead><tr><th>Name</th><th>Email</th><th>Phone</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, g := range params.Guests {
			if _, err := fmt.Fprintf(w, `<tr><td><a href="/guests/%s/edit">%s</a></td><td>%s</td><td>%s</td></tr>`+"\n",
				g.ID, esc(g.FullName()), esc(g.Email), esc(g.Phone)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
}

// GuestFormPage renders the guest create/edit form with inline field
// annotations.
func GuestFormPage(params guest.FormPageParams) templ.Component {
	title, action := "Add guest", "/guests"
	if params.Guest != nil {
		title, action = "Edit guest", "/guests/"+params.Guest.ID.String()
	}

	return layout(title, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s">
`, esc(title), action); err != nil {
			return err
		}

		d, ann, f := guest.Descriptor, params.Annotations, params.Form
		steps := []func() error{
			func() error { return textField(w, d, ann, "first_name", "First name", "", f.FirstName) },
			func() error { return textField(w, d, ann, "last_name", "Last name", "", f.LastName) },
			func() error { return textField(w, d, ann, "email", "Email", "email", f.Email) },
			func() error { return textField(w, d, ann, "phone", "Phone", "tel", f.Phone) },
			func() error { return textField(w, d, ann, "date_of_birth", "Date of birth", "date", f.DateOfBirth) },
			func() error { return textareaField(w, d, ann, "address", "Address", f.Address) },
			func() error { return textareaField(w, d, ann, "notes", "Notes", f.Notes) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<button type="submit">Save</button>
</form>
`)
		return err
	})
}
