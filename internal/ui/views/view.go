package views

import (
	"fmt"
	"strconv"
	"strings"

	"moviesearch/internal/domain"
)

// FieldView is one editable search parameter
type FieldView struct {
	Label   string
	Value   string // current value, empty when unset
	Focused bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Fields     []FieldView
	Input      string // rendered text input, shown in place of the focused value
	Fetching   bool
	Spinner    string
	Status     string
	StatusErr  bool
	Page       int
	HasNext    bool
	Movies     []domain.MovieSummary
	ShowScores bool
	Help       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("moviesearch"))
	content.WriteString("\n")

	for _, f := range vs.Fields {
		content.WriteString(r.renderField(f, vs.Input))
		content.WriteString("\n")
	}

	switch {
	case vs.Fetching:
		content.WriteString(r.styles.Loading.Render(vs.Spinner + " Searching..."))
	case vs.StatusErr:
		content.WriteString(r.styles.StatusError.Render(vs.Status))
	default:
		content.WriteString(r.styles.Status.Render(vs.Status))
	}
	content.WriteString("\n\n")

	if len(vs.Movies) == 0 {
		content.WriteString(r.styles.Dim.Render("No results"))
		content.WriteString("\n")
	}
	for i, m := range vs.Movies {
		content.WriteString(r.renderMovie(i+1, m, vs.ShowScores))
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Pagination.Render(pagination(vs.Page, vs.HasNext)))
	content.WriteString("\n")

	if vs.Help != "" {
		content.WriteString(r.styles.Help.Render(vs.Help))
	}

	return content.String()
}

func (r *Renderer) renderField(f FieldView, input string) string {
	if f.Focused {
		return r.styles.Focused.Render(f.Label) + " " + input
	}
	value := f.Value
	if value == "" {
		value = r.styles.Dim.Render("any")
	}
	return r.styles.Label.Render(f.Label) + " " + value
}

func (r *Renderer) renderMovie(rank int, m domain.MovieSummary, showScores bool) string {
	line := fmt.Sprintf("%2d. %s", rank, r.styles.MovieTitle.Render(m.DisplayTitle()))
	if m.Year != 0 {
		line += " " + r.styles.Year.Render(fmt.Sprintf("(%d)", m.Year))
	}
	if showScores {
		if m.CriticScore != nil {
			line += "  " + r.styles.Score.Render("critic "+FormatScore(*m.CriticScore))
		}
		if m.UserScore != nil {
			line += "  " + r.styles.Score.Render("user "+FormatScore(*m.UserScore))
		}
	}
	return line
}

func pagination(page int, hasNext bool) string {
	var parts []string
	if page > 1 {
		parts = append(parts, "‹ prev")
	}
	parts = append(parts, fmt.Sprintf("Page %d", page))
	if hasNext {
		parts = append(parts, "next ›")
	}
	return strings.Join(parts, "  ")
}

// FormatScore renders a score in its shortest form (88, 8.7)
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
