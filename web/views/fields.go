package views

import (
	"fmt"
	"io"

	"github.com/hotelops/hotelkit/pkg/forms"
)

// selectOption is one entry of a select field.
type selectOption struct {
	Value string
	Label string
}

func fieldClass(ann forms.Annotations, name string) string {
	switch ann[name].State {
	case forms.Invalid:
		return "field invalid"
	case forms.Valid:
		return "field valid"
	default:
		return "field"
	}
}

// fieldError renders the inline annotation message, if any.
func fieldError(w io.Writer, ann forms.Annotations, name string) error {
	msg := ann.Message(name)
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`+"\n", esc(msg))
	return err
}

func requiredMark(d forms.Descriptor, name string) string {
	if d.IsRequired(name) {
		return ` <span class="required">*</span>`
	}
	return ""
}

func textField(w io.Writer, d forms.Descriptor, ann forms.Annotations, name, label, inputType, value string) error {
	if inputType == "" {
		inputType = "text"
	}
	_, err := fmt.Fprintf(w, `<div class="%s">
<label for="%s">%s%s</label>
<input type="%s" id="%s" name="%s" value="%s">
`, fieldClass(ann, name), esc(name), esc(label), requiredMark(d, name), inputType, esc(name), esc(name), esc(value))
	if err != nil {
		return err
	}
	if err := fieldError(w, ann, name); err != nil {
		return err
	}
	_, err = io.WriteString(w, "</div>\n")
	return err
}

func textareaField(w io.Writer, d forms.Descriptor, ann forms.Annotations, name, label, value string) error {
	_, err := fmt.Fprintf(w, `<div class="%s">
<label for="%s">%s%s</label>
<textarea id="%s" name="%s">%s</textarea>
`, fieldClass(ann, name), esc(name), esc(label), requiredMark(d, name), esc(name), esc(name), esc(value))
	if err != nil {
		return err
	}
	if err := fieldError(w, ann, name); err != nil {
		return err
	}
	_, err = io.WriteString(w, "</div>\n")
	return err
}

func selectField(w io.Writer, d forms.Descriptor, ann forms.Annotations, name, label, value string, options []selectOption) error {
	_, err := fmt.Fprintf(w, `<div class="%s">
<label for="%s">%s%s</label>
<select id="%s" name="%s">
<option value="">Select...</option>
`, fieldClass(ann, name), esc(name), esc(label), requiredMark(d, name), esc(name), esc(name))
	if err != nil {
		return err
	}
	for _, opt := range options {
		selected := ""
		if opt.Value == value {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`+"\n", esc(opt.Value), selected, esc(opt.Label)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</select>\n"); err != nil {
		return err
	}
	if err := fieldError(w, ann, name); err != nil {
		return err
	}
	_, err = io.WriteString(w, "</div>\n")
	return err
}

func checkboxField(w io.Writer, name, label string, checked bool) error {
	mark := ""
	if checked {
		mark = " checked"
	}
	_, err := fmt.Fprintf(w, `<div class="field">
<label><input type="checkbox" name="%s" value="true"%s> %s</label>
</div>
`, esc(name), mark, esc(label))
	return err
}

func stringOptions(values []string) []selectOption {
	opts := make([]selectOption, 0, len(values))
	for _, v := range values {
		opts = append(opts, selectOption{Value: v, Label: v})
	}
	return opts
}
