package main

import (
	"context"
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/debianitram/modalview"
	"github.com/debianitram/modalview/csrf"
	"github.com/debianitram/modalview/flash"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// demoHandler routes the launcher page and the three showcase modals.
type demoHandler struct {
	about   *modalview.TemplateView
	report  *modalview.UtilView
	contact *modalview.FormView
	log     zerolog.Logger
}

func newDemoHandler(renderer modalview.Renderer) (*demoHandler, error) {
	about := modalview.NewTemplateView()
	about.Title = "About this demo"
	about.Icon = "icon-info"
	about.Description = "Every modal on this page is served by the **same** view pipeline, " +
		"whether it arrives as a fragment or as a full page."
	about.Renderer = renderer

	report, err := modalview.NewUtilView("send_report", modalview.Utils{
		"send_report": sendReport,
	})
	if err != nil {
		return nil, err
	}
	report.Title = "Usage report"
	report.Description = "Mail the weekly usage report to the site owner."
	report.UtilButton = modalview.NewButton("Send report")
	report.UtilArgs = url.Values{"to": {"owner@example.com"}}
	report.RedirectTo = "/"
	report.Renderer = renderer

	contact, err := modalview.NewFormView(saveMessage)
	if err != nil {
		return nil, err
	}
	contact.Title = "Contact us"
	contact.Description = "We answer within *two* working days."
	contact.SubmitButton = modalview.Button{Value: "Send", Style: modalview.ButtonSuccess, Display: true}
	contact.ContentTemplateName = "contact_form.html"
	contact.Validate = validateMessage
	contact.RedirectTo = "/"
	contact.Renderer = renderer

	return &demoHandler{
		about:   about,
		report:  report,
		contact: contact,
		log:     log.With().Str("component", "demo").Logger(),
	}, nil
}

func (h *demoHandler) ServeHTTP(c context.Context, w http.ResponseWriter, r *http.Request) {
	route := modalview.NewRoute(r)
	switch {
	case route.MatchesPath("/"):
		h.index(w, r)
	case route.MatchesPath("/modals/about"):
		h.about.ServeHTTP(w, r)
	case route.MatchesPath("/modals/report"):
		h.report.ServeHTTP(w, r)
	case route.MatchesPath("/modals/contact"):
		h.contact.ServeHTTP(w, r)
	default:
		http.NotFound(w, r)
	}
}

// index serves the launcher page. The visitor cookie is minted here so the
// tokens inside the modals are bound to it.
func (h *demoHandler) index(w http.ResponseWriter, r *http.Request) {
	csrf.EnsureCookie(w, r)

	data := map[string]interface{}{
		"flash": flash.Get(w, r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		h.log.Error().Err(err).Msg("rendering index")
	}
}

func sendReport(ctx context.Context, args url.Values) (modalview.UtilResult, error) {
	to := args.Get("to")
	if to == "" {
		return modalview.UtilResult{}, modalview.LogError(log.Logger, "report has no recipient", errors.New("missing to argument"))
	}

	log.Info().Str("to", to).Msg("usage report sent")
	return modalview.UtilResult{
		Response: modalview.NewResponse("Report sent to "+to, modalview.ResultSuccess),
	}, nil
}

func saveMessage(ctx context.Context, values url.Values) (modalview.UtilResult, error) {
	log.Info().
		Str("email", values.Get("email")).
		Int("size", len(values.Get("message"))).
		Msg("message received")

	return modalview.UtilResult{
		Response: modalview.NewResponse("Thanks, we got your message", modalview.ResultSuccess),
	}, nil
}

func validateMessage(values url.Values) []modalview.FieldError {
	var errs []modalview.FieldError
	if values.Get("email") == "" {
		errs = append(errs, modalview.FieldError{Field: "email", Message: "is required"})
	}
	if values.Get("message") == "" {
		errs = append(errs, modalview.FieldError{Field: "message", Message: "is required"})
	}
	return errs
}
