package modalview

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/debianitram/modalview/flash"
)

// View carries the pieces every modal shares: the header texts, the close
// button, the template trio and the renderer that assembles them. Configure
// it at boot and treat it as read only afterwards; per request state lives
// on the stack, so one view serves many requests at once.
type View struct {
	Title       string
	Description string
	Icon        string
	CloseButton Button

	// TemplateName is the modal shell, ContentTemplateName the fragment
	// inside it, BaseTemplateName the page wrap for direct visits.
	TemplateName        string
	ContentTemplateName string
	BaseTemplateName    string

	// Data holds static extras handed to every render. DataFunc, when
	// set, is called per request and its entries land on top of Data.
	// The reserved modal keys are written last and mask both.
	Data     Data
	DataFunc func(*http.Request) Data

	Renderer Renderer
	Log      zerolog.Logger
}

// NewView returns a view preloaded with the stock texts, close button and
// templates, rendering from the embedded bundle.
func NewView() View {
	return View{
		Title:               "title",
		Description:         "description",
		CloseButton:         Button{Value: "Close", Style: ButtonPrimary, Display: true},
		TemplateName:        TemplateModal,
		ContentTemplateName: TemplateGetContent,
		BaseTemplateName:    TemplateBase,
		Renderer:            DefaultRenderer(),
		Log:                 zlog.Logger,
	}
}

// templateData assembles the context handed to the templates. The reserved
// modal keys go in last so extras can never mask them.
func (v *View) templateData(r *http.Request, resp *Response) Data {
	data := NewData()
	if v.Data != nil {
		data.merge(v.Data)
	}
	if v.DataFunc != nil {
		data.merge(v.DataFunc(r))
	}
	data["title"] = v.Title
	data["description"] = v.Description
	data["button_close"] = v.CloseButton
	data["content_template_name"] = v.ContentTemplateName
	data["base_template_name"] = v.BaseTemplateName
	data["icon"] = v.Icon
	data["response"] = resp
	return data
}

func (v *View) pageSet() RenderSet {
	return RenderSet{
		Files: []string{v.BaseTemplateName, v.TemplateName, v.ContentTemplateName},
		Name:  "layout",
	}
}

func (v *View) modalSet() RenderSet {
	return RenderSet{
		Files: []string{v.TemplateName, v.ContentTemplateName},
		Name:  "modal",
	}
}

func (v *View) contentSet() RenderSet {
	return RenderSet{
		Files: []string{v.ContentTemplateName},
		Name:  "modal_content",
	}
}

// outcome is the per request product of a utility or form action. It stands
// in for mutable view flags so views never carry request state.
type outcome struct {
	// acted marks that a side effecting action ran to completion; only
	// then may a redirect be taken.
	acted       bool
	redirectTo  string
	contentOnly bool
}

func (o outcome) redirects(st requestState) bool {
	return st.ajax && o.acted && o.redirectTo != ""
}

// respond runs the response selection every view shares. A completed action
// with a redirect target short circuits rendering for xhr clients. Direct
// visits always get the full page, whatever fragment the action asked for.
// Everything else renders into the json envelope.
func (v *View) respond(w http.ResponseWriter, r *http.Request, st requestState, data Data, out outcome) {
	if out.redirects(st) {
		writeJSON(w, v.Log, redirectPayload(out.redirectTo))
		return
	}

	var set RenderSet
	switch {
	case !st.ajax:
		set = v.pageSet()
	case out.contentOnly:
		set = v.contentSet()
	default:
		set = v.modalSet()
	}

	markup, err := v.Renderer.RenderString(r, set, data)
	if err != nil {
		abort(w, r, v.Log, http.StatusInternalServerError, err)
		return
	}

	if st.ajax {
		writeJSON(w, v.Log, contentPayload(markup))
		return
	}
	writeHTML(w, markup)
}

// TemplateView serves a modal with static content on GET and nothing more.
type TemplateView struct {
	View
}

// NewTemplateView returns a GET only modal view with the stock defaults.
func NewTemplateView() *TemplateView {
	return &TemplateView{View: NewView()}
}

func (v *TemplateView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	st := classify(r)
	v.respond(w, r, st, v.templateData(r, nil), outcome{})
}

// UtilView extends TemplateView with a named action. The first GET shows
// the modal plus a button pointing back at the same url with ?util=true;
// the marked GET runs the action and shows its outcome in the modal, or
// redirects when a target is set.
type UtilView struct {
	TemplateView

	// UtilButton labels the trigger. Its URL is filled in per request.
	UtilButton Button

	// UtilArgs are preset arguments handed to the action. Query params
	// land on top, so ?x=5 beats a preset x.
	UtilArgs url.Values

	// RedirectTo, when set, sends xhr clients there once the action ran.
	RedirectTo string

	utilName string
	utils    Utils
}

// NewUtilView wires the view to the named action. The name must exist in
// utils; failing here beats a 500 on the first click.
func NewUtilView(name string, utils Utils) (*UtilView, error) {
	if _, ok := utils[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUtilNotRegistered, name)
	}
	dup := make(Utils, len(utils))
	for k, fn := range utils {
		dup[k] = fn
	}
	return &UtilView{
		TemplateView: *NewTemplateView(),
		UtilButton:   NewButton("Run test"),
		utilName:     name,
		utils:        dup,
	}, nil
}

func (v *UtilView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	st := classify(r)

	// per request copy, the shared view stays untouched
	button := v.UtilButton
	button.URL = st.path + "?util=true"

	var out outcome
	var resp *Response
	if st.utilMode {
		res, err := v.runUtil(r.Context(), st)
		if err != nil {
			abort(w, r, v.Log, http.StatusInternalServerError, err)
			return
		}
		resp = res.Response
		out = outcome{acted: true, contentOnly: true, redirectTo: v.RedirectTo}
		if res.RedirectTo != "" {
			out.redirectTo = res.RedirectTo
		}
		if out.redirects(st) && resp != nil {
			flash.Set(w, resp.Text)
		}
	}

	data := v.templateData(r, resp)
	data["util_button"] = button
	v.respond(w, r, st, data, out)
}

func (v *UtilView) runUtil(ctx context.Context, st requestState) (UtilResult, error) {
	fn, ok := v.utils[v.utilName]
	if !ok {
		return UtilResult{}, fmt.Errorf("%w: %q", ErrUtilNotRegistered, v.utilName)
	}
	return fn(ctx, mergeArgs(v.UtilArgs, st.query))
}
