package modalview

// Bundled template files. A renderer resolves these names against its view
// path first and falls back to the embedded copies.
const (
	TemplateBase        = "base.html"
	TemplateModal       = "modal.html"
	TemplateGetContent  = "modal_get_content.html"
	TemplateFormContent = "modal_form_content.html"
)

// Button styles, rendered as btn-<style> css classes.
const (
	ButtonDefault = "default"
	ButtonInfo    = "info"
	ButtonPrimary = "primary"
	ButtonSuccess = "success"
	ButtonWarning = "warning"
	ButtonDanger  = "danger"
	ButtonLink    = "link"
)

// Button describes an action shown in the modal footer.
type Button struct {
	Value   string
	Style   string
	Display bool
	URL     string
}

// NewButton returns a visible button with the default info style.
func NewButton(value string) Button {
	return Button{Value: value, Style: ButtonInfo, Display: true}
}

// Response result levels, rendered as alert-<result> css classes.
const (
	ResultInfo    = "info"
	ResultSuccess = "success"
	ResultWarning = "warning"
	ResultDanger  = "danger"
)

// Response carries the outcome message an action hands back for display
// inside the modal.
type Response struct {
	Text   string
	Result string
}

// NewResponse fills in the stock text and result level when the caller
// leaves them blank.
func NewResponse(text, result string) *Response {
	if text == "" {
		text = "Result"
	}
	if result == "" {
		result = ResultInfo
	}
	return &Response{Text: text, Result: result}
}
