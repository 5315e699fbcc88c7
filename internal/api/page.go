package api

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"expert-assistant/internal/assistant"
	"expert-assistant/internal/render"
	"expert-assistant/internal/roles"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type askForm struct {
	Role  string `schema:"role"`
	Input string `schema:"input"`
}

type pageData struct {
	Roles      []string
	Selected   string
	Input      string
	Submitted  bool
	Validation string
	Blocking   string
	Error      string
	Answer     template.HTML
}

func newPageData(role, input string) pageData {
	selected := role
	if !roles.Valid(selected) {
		selected = roles.Default
	}
	return pageData{
		Roles:    roles.Names(),
		Selected: selected,
		Input:    input,
	}
}

func (s *AssistantService) ShowPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, newPageData(roles.Default, ""))
}

// SubmitForm always answers 200; the outcome of the call is shown on the page.
func (s *AssistantService) SubmitForm(w http.ResponseWriter, r *http.Request) {
	form, err := ParseForm[askForm](r)
	if err != nil {
		writeError(w, err)
		return
	}

	data := newPageData(form.Role, form.Input)
	data.Submitted = true

	if form.Input == "" {
		data.Validation = emptyInputMessage
		renderPage(w, data)
		return
	}

	answer, err := s.responder.Respond(r.Context(), form.Input, form.Role)
	switch {
	case errors.Is(err, assistant.ErrMissingCredential):
		data.Blocking = err.Error()
	case err != nil:
		data.Error = "LLM 呼び出しでエラーが発生しました: " + err.Error()
	default:
		html, err := render.Markdown(answer)
		if err != nil {
			slog.Warn("falling back to plain text answer", "error", err)
			html = template.HTML(template.HTMLEscapeString(answer)) //nolint:gosec
		}
		data.Answer = html
	}

	renderPage(w, data)
}

func renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("error rendering page", "error", err)
	}
}
