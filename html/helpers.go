package html

import (
	"html/template"
	"time"

	"github.com/russross/blackfriday"
)

// FuncMap returns the helpers the bundled modal templates rely on. Renderers
// merge app supplied funcs on top of these.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add":       Add,
		"checked":   Checked,
		"css":       CSS,
		"disabled":  Disabled,
		"errorlist": ToErrorList,
		"markdown":  Markdown,
		"preview":   Preview,
		"timestamp": Timestamp,
	}
}

// CSS prevents any custom embedded styles from being encoded to html safe values
func CSS(s string) template.CSS {
	return template.CSS(s)
}

// Preview returns a preview of the string
func Preview(size int, val string) string {
	if len(val) <= size {
		return val
	}
	return val[:size-1] + "..."
}

// Markdown converts text in the markdown syntax to html
func Markdown(input string) interface{} {
	out := string(blackfriday.MarkdownCommon([]byte(input)))
	return template.HTML(out)
}

// Add adds the numbers
func Add(a, b int) int {
	return a + b
}

// Checked returns the checked attribute for positive values.
// 	<input type="checkbox" {{IsAdmin | checked}}> => <input type="checkbox" checked="checked">
func Checked(checked bool) template.HTMLAttr {
	if checked {
		return template.HTMLAttr(`checked="checked"`)
	}
	return ""
}

// Disabled returns the disabled attribute for non empty errors.
// 	<button type="submit" {{HasError | disabled}}>Save</button> => <button type="submit" disabled="disabled">Save</button>
func Disabled(err interface{}) template.HTMLAttr {
	d := template.HTMLAttr(`disabled="disabled"`)
	switch err.(type) {
	case string:
		if len(err.(string)) == 0 {
			return ""
		}
		return d
	case error:
		return d
	default:
		return ""
	}
}

// Timestamp formats the time to the RFC3339 layout
func Timestamp(d time.Time) string {
	return d.Format(time.RFC3339)
}
