// Package views renders the server-side HTML pages. Components are built by
// hand on templ.ComponentFunc; every interpolated value is escaped.
package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/a-h/templ"
)

const dateDisplay = "2006-01-02"

// layout wraps a page body in the shared HTML shell.
func layout(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | Hotelkit</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<nav class="topnav">
<a href="/">Dashboard</a>
<a href="/guests">Guests</a>
<a href="/rooms">Rooms</a>
<a href="/bookings">Bookings</a>
<a href="/payments">Payments</a>
<a href="/meals">Meals</a>
</nav>
<main>
`, html.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

func esc(s string) string { return html.EscapeString(s) }

func formatDate(t time.Time) string { return t.Format(dateDisplay) }

func formatMoney(v float64) string { return fmt.Sprintf("%.2f", v) }
