package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hotelops/hotelkit/handler"
)

// ErrorPage renders the full-page error view the error handler falls back to
// for browser requests.
func ErrorPage(params handler.ErrorPageParams) templ.Component {
	return layout(fmt.Sprintf("Error %d", params.StatusCode), func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Something went wrong</h1>
<p class="error-status">%d</p>
<p>%s</p>
<p><a href="%s">Try again</a> or go back to the <a href="/">dashboard</a>.</p>
`, params.StatusCode, esc(params.Error), esc(params.RetryURL))
		return err
	})
}
