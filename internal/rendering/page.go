package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/jonathan/outfit-curator/internal/types"
)

//go:embed templates/*
var templateFS embed.FS

// Option is one entry of a form select.
type Option struct {
	Value    string
	Selected bool
}

// PageData is passed to the form page template.
type PageData struct {
	Title            string
	Action           string
	Occasions        []Option
	Weathers         []Option
	MaxOutfits       string
	ConsiderPrevious bool
	InventoryText    string
	LoadingMessage   string
	Result           *Result
}

// NewPageData returns page data with the form's initial selections.
// Empty occasion or weather values select the first option.
func NewPageData(occasion, weather, maxOutfits string, considerPrevious bool, inventoryText string) *PageData {
	return &PageData{
		Title:            "Outfit Curator",
		Action:           "/ui/recommend",
		Occasions:        occasionOptions(occasion),
		Weathers:         weatherOptions(weather),
		MaxOutfits:       maxOutfits,
		ConsiderPrevious: considerPrevious,
		InventoryText:    inventoryText,
		LoadingMessage:   LoadingMessage,
	}
}

func occasionOptions(selected string) []Option {
	values := make([]string, 0, len(types.OccasionTypes()))
	for _, o := range types.OccasionTypes() {
		values = append(values, string(o))
	}
	return buildOptions(values, selected)
}

func weatherOptions(selected string) []Option {
	values := make([]string, 0, len(types.WeatherTypes()))
	for _, w := range types.WeatherTypes() {
		values = append(values, string(w))
	}
	return buildOptions(values, selected)
}

func buildOptions(values []string, selected string) []Option {
	options := make([]Option, len(values))
	found := false
	for i, v := range values {
		options[i] = Option{Value: v, Selected: v == selected}
		found = found || options[i].Selected
	}
	if !found && len(options) > 0 {
		options[0].Selected = true
	}
	return options
}

// PageRenderer renders the form page and result fragments.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the embedded page templates.
func NewPageRenderer() (*PageRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/page.html.tmpl", "templates/result.html.tmpl")
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse page templates",
			Cause:   err,
		}
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// RenderPage writes the full form page.
func (r *PageRenderer) RenderPage(w io.Writer, data *PageData) error {
	return r.execute(w, "page", data)
}

// RenderResult writes only the results panel.
func (r *PageRenderer) RenderResult(w io.Writer, result *Result) error {
	return r.execute(w, "result", result)
}

// execute renders into a buffer first so a failing template never leaves a
// half-written response.
func (r *PageRenderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return &RenderError{
			Message: "failed to execute template " + name,
			Cause:   err,
		}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{
			Message: "failed to write output",
			Cause:   err,
		}
	}
	return nil
}
