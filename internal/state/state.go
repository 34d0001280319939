package state

import (
	"moviesearch/internal/actions"
	"moviesearch/internal/domain"
)

// SearchState contains the search parameters and the current results
type SearchState struct {
	// Search parameters
	Keywords  []string // title keywords, nil when unset
	YearMin   *int     // release year bounds, nil means no bound
	YearMax   *int
	CriticMin *float64 // critic score bounds
	CriticMax *float64
	UserMin   *float64 // user score bounds
	UserMax   *float64
	Page      int // current result page, starts at 1

	// Request state
	Fetching bool // a request is in flight
	HasNext  bool // a further page exists

	// Results
	Movies []domain.Movie
}

// Initial returns the state before any action has been applied
func Initial() SearchState {
	return SearchState{Page: 1}
}

// Params returns the fields the search request is built from
func (s SearchState) Params() domain.SearchParams {
	return domain.SearchParams{
		Keywords:  s.Keywords,
		YearMin:   s.YearMin,
		YearMax:   s.YearMax,
		CriticMin: s.CriticMin,
		CriticMax: s.CriticMax,
		UserMin:   s.UserMin,
		UserMax:   s.UserMax,
		Page:      s.Page,
	}
}

// Reduce applies an action and returns the resulting state.
// The input state is not modified; unknown actions leave it unchanged.
func Reduce(s SearchState, action actions.Action) SearchState {
	switch a := action.(type) {
	case actions.UpdateMoviesAction:
		s.Movies = a.Movies
	case actions.UpdateKeywordsAction:
		s.Keywords = a.Keywords
	case actions.UpdateUserMinAction:
		s.UserMin = a.UserMin
	case actions.UpdateUserMaxAction:
		s.UserMax = a.UserMax
	case actions.UpdateYearMinAction:
		s.YearMin = a.YearMin
	case actions.UpdateYearMaxAction:
		s.YearMax = a.YearMax
	case actions.UpdateCriticMinAction:
		s.CriticMin = a.CriticMin
	case actions.UpdateCriticMaxAction:
		s.CriticMax = a.CriticMax
	case actions.UpdateFetchingAction:
		s.Fetching = a.Fetching
	case actions.UpdateHasNextAction:
		s.HasNext = a.HasNext
	case actions.NextPageAction:
		s.Page++
	case actions.PrevPageAction:
		// Page never drops below 1
		if s.Page > 1 {
			s.Page--
		}
	case actions.ResetPaginationAction:
		s.Page = 1
	}
	return s
}
