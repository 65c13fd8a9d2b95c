package modalview

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/debianitram/modalview/csrf"
	"github.com/debianitram/modalview/flash"
	"github.com/debianitram/modalview/form"
)

// FieldError points a validation failure at the field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormView serves a modal form. GET renders it; POST verifies the csrf
// token, validates the values and hands them to the wired action. Plain
// form posts follow post/redirect/get when a redirect target exists.
type FormView struct {
	TemplateView

	// SubmitButton labels the form submit.
	SubmitButton Button

	// Validate, when set, vets the posted values. Returned errors
	// re-render the form under a form_errors entry instead of acting.
	Validate func(values url.Values) []FieldError

	// RedirectTo, when set, is where clients land after a valid post.
	RedirectTo string

	action Util
}

// NewFormView wires the form to its action, which receives the posted
// values once they pass validation.
func NewFormView(action Util) (*FormView, error) {
	if action == nil {
		return nil, errors.New("form view needs an action")
	}
	v := &FormView{
		TemplateView: *NewTemplateView(),
		SubmitButton: Button{Value: "Submit", Style: ButtonPrimary, Display: true},
		action:       action,
	}
	v.ContentTemplateName = TemplateFormContent
	return v, nil
}

func (v *FormView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		st := classify(r)
		v.respond(w, r, st, v.formData(r, nil, nil), outcome{})
	case http.MethodPost:
		v.post(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// formData is templateData plus the form only entries.
func (v *FormView) formData(r *http.Request, resp *Response, errs []FieldError) Data {
	data := v.templateData(r, resp)
	data["button_submit"] = v.SubmitButton
	data["form_action"] = r.URL.Path
	if len(errs) > 0 {
		data["form_errors"] = errs
	}
	return data
}

func (v *FormView) post(w http.ResponseWriter, r *http.Request) {
	st := classify(r)

	// parse before the token check so multipart bodies are readable
	values, err := form.Values(r)
	if err != nil {
		abort(w, r, v.Log, http.StatusBadRequest, err)
		return
	}
	if err := csrf.Check(r); err != nil {
		abort(w, r, v.Log, http.StatusForbidden, err)
		return
	}
	values.Del(csrf.FieldName)
	values.Del("_method")

	if v.Validate != nil {
		if errs := v.Validate(values); len(errs) > 0 {
			v.respond(w, r, st, v.formData(r, nil, errs), outcome{contentOnly: true})
			return
		}
	}

	res, err := v.action(r.Context(), values)
	if err != nil {
		abort(w, r, v.Log, http.StatusInternalServerError, err)
		return
	}

	out := outcome{acted: true, contentOnly: true, redirectTo: v.RedirectTo}
	if res.RedirectTo != "" {
		out.redirectTo = res.RedirectTo
	}

	// plain form posts land on the target page with the outcome flashed
	if !st.ajax && out.redirectTo != "" {
		if res.Response != nil {
			flash.Set(w, res.Response.Text)
		}
		http.Redirect(w, r, out.redirectTo, http.StatusSeeOther)
		return
	}

	if out.redirects(st) && res.Response != nil {
		flash.Set(w, res.Response.Text)
	}
	v.respond(w, r, st, v.formData(r, res.Response, nil), out)
}
