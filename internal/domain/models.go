package domain

import "encoding/json"

// Movie is a single search hit exactly as the backend sent it.
// The search layer never looks inside; only the UI decodes a Summary for display.
type Movie json.RawMessage

// MarshalJSON returns the original bytes
func (m Movie) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return m, nil
}

// UnmarshalJSON keeps a copy of the raw bytes
func (m *Movie) UnmarshalJSON(data []byte) error {
	*m = append((*m)[0:0], data...)
	return nil
}

// Summary decodes the fields the UI knows how to show.
// Fields that are missing or have an unexpected type are left zero.
func (m Movie) Summary() MovieSummary {
	var s MovieSummary
	if len(m) > 0 {
		_ = json.Unmarshal(m, &s)
	}
	return s
}

// MovieSummary is the display view of a Movie
type MovieSummary struct {
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	CriticScore *float64 `json:"criticScore"`
	UserScore   *float64 `json:"userScore"`
}

// DisplayTitle returns the title or a placeholder for untitled records
func (s MovieSummary) DisplayTitle() string {
	if s.Title == "" {
		return "(untitled)"
	}
	return s.Title
}

// SearchParams are the search fields sent to the backend.
// Nil fields are unset and are left out of the query.
type SearchParams struct {
	Keywords  []string
	YearMin   *int
	YearMax   *int
	CriticMin *float64
	CriticMax *float64
	UserMin   *float64
	UserMax   *float64
	Page      int
}

// SearchResponse is the body returned by GET /api/movie
type SearchResponse struct {
	Movies []Movie `json:"movies"`
}
