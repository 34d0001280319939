// Package actions defines the state transitions the search UI can request.
package actions

import (
	"encoding/json"
	"fmt"

	"moviesearch/internal/domain"
)

// ActionType identifies an action
type ActionType string

// Action types
const (
	TypeUpdateMovies    ActionType = "UPDATE_MOVIES"
	TypeUpdateKeywords  ActionType = "UPDATE_KEYWORDS"
	TypeUpdateUserMin   ActionType = "UPDATE_USER_MIN"
	TypeUpdateUserMax   ActionType = "UPDATE_USER_MAX"
	TypeUpdateYearMin   ActionType = "UPDATE_YEAR_MIN"
	TypeUpdateYearMax   ActionType = "UPDATE_YEAR_MAX"
	TypeUpdateCriticMin ActionType = "UPDATE_CRITIC_MIN"
	TypeUpdateCriticMax ActionType = "UPDATE_CRITIC_MAX"
	TypeUpdateFetching  ActionType = "UPDATE_FETCHING"
	TypeNextPage        ActionType = "NEXT_PAGE"
	TypePrevPage        ActionType = "PREV_PAGE"
	TypeUpdateHasNext   ActionType = "UPDATE_HAS_NEXT"
	TypeResetPagination ActionType = "RESET_PAGINATION"
)

// Action is an immutable record describing a requested state transition.
// The set of implementations is closed to this package.
type Action interface {
	Type() ActionType
	sealed()
}

// UpdateMoviesAction replaces the result list
type UpdateMoviesAction struct {
	Movies []domain.Movie `json:"movies"`
}

func (UpdateMoviesAction) Type() ActionType { return TypeUpdateMovies }
func (UpdateMoviesAction) sealed()          {}

// UpdateKeywordsAction replaces the title keywords
type UpdateKeywordsAction struct {
	Keywords []string `json:"keywords"`
}

func (UpdateKeywordsAction) Type() ActionType { return TypeUpdateKeywords }
func (UpdateKeywordsAction) sealed()          {}

// UpdateUserMinAction sets the lower user score bound
type UpdateUserMinAction struct {
	UserMin *float64 `json:"userMin"`
}

func (UpdateUserMinAction) Type() ActionType { return TypeUpdateUserMin }
func (UpdateUserMinAction) sealed()          {}

// UpdateUserMaxAction sets the upper user score bound
type UpdateUserMaxAction struct {
	UserMax *float64 `json:"userMax"`
}

func (UpdateUserMaxAction) Type() ActionType { return TypeUpdateUserMax }
func (UpdateUserMaxAction) sealed()          {}

// UpdateYearMinAction sets the earliest release year
type UpdateYearMinAction struct {
	YearMin *int `json:"yearMin"`
}

func (UpdateYearMinAction) Type() ActionType { return TypeUpdateYearMin }
func (UpdateYearMinAction) sealed()          {}

// UpdateYearMaxAction sets the latest release year
type UpdateYearMaxAction struct {
	YearMax *int `json:"yearMax"`
}

func (UpdateYearMaxAction) Type() ActionType { return TypeUpdateYearMax }
func (UpdateYearMaxAction) sealed()          {}

// UpdateCriticMinAction sets the lower critic score bound
type UpdateCriticMinAction struct {
	CriticMin *float64 `json:"criticMin"`
}

func (UpdateCriticMinAction) Type() ActionType { return TypeUpdateCriticMin }
func (UpdateCriticMinAction) sealed()          {}

// UpdateCriticMaxAction sets the upper critic score bound
type UpdateCriticMaxAction struct {
	CriticMax *float64 `json:"criticMax"`
}

func (UpdateCriticMaxAction) Type() ActionType { return TypeUpdateCriticMax }
func (UpdateCriticMaxAction) sealed()          {}

// UpdateFetchingAction shows or hides the loading indicator
type UpdateFetchingAction struct {
	Fetching bool `json:"fetching"`
}

func (UpdateFetchingAction) Type() ActionType { return TypeUpdateFetching }
func (UpdateFetchingAction) sealed()          {}

// NextPageAction increases the page number
type NextPageAction struct{}

func (NextPageAction) Type() ActionType { return TypeNextPage }
func (NextPageAction) sealed()          {}

// PrevPageAction decreases the page number
type PrevPageAction struct{}

func (PrevPageAction) Type() ActionType { return TypePrevPage }
func (PrevPageAction) sealed()          {}

// UpdateHasNextAction toggles whether a further page is offered
type UpdateHasNextAction struct {
	HasNext bool `json:"hasNext"`
}

func (UpdateHasNextAction) Type() ActionType { return TypeUpdateHasNext }
func (UpdateHasNextAction) sealed()          {}

// ResetPaginationAction sets the page number back to 1
type ResetPaginationAction struct{}

func (ResetPaginationAction) Type() ActionType { return TypeResetPagination }
func (ResetPaginationAction) sealed()          {}

// UpdateMovies updates the list of movies shown to the user
func UpdateMovies(movies []domain.Movie) Action {
	return UpdateMoviesAction{Movies: movies}
}

// UpdateKeywords updates the title keywords in the search params
func UpdateKeywords(keywords []string) Action {
	return UpdateKeywordsAction{Keywords: keywords}
}

// UpdateUserMin updates the user score lower bound
func UpdateUserMin(userMin *float64) Action {
	return UpdateUserMinAction{UserMin: userMin}
}

// UpdateUserMax updates the user score upper bound
func UpdateUserMax(userMax *float64) Action {
	return UpdateUserMaxAction{UserMax: userMax}
}

// UpdateYearMin updates the release year lower bound
func UpdateYearMin(yearMin *int) Action {
	return UpdateYearMinAction{YearMin: yearMin}
}

// UpdateYearMax updates the release year upper bound
func UpdateYearMax(yearMax *int) Action {
	return UpdateYearMaxAction{YearMax: yearMax}
}

// UpdateCriticMin updates the critic score lower bound
func UpdateCriticMin(criticMin *float64) Action {
	return UpdateCriticMinAction{CriticMin: criticMin}
}

// UpdateCriticMax updates the critic score upper bound
func UpdateCriticMax(criticMax *float64) Action {
	return UpdateCriticMaxAction{CriticMax: criticMax}
}

// UpdateFetching shows or hides the loading animation
func UpdateFetching(fetching bool) Action {
	return UpdateFetchingAction{Fetching: fetching}
}

// NextPage increases the page number
func NextPage() Action {
	return NextPageAction{}
}

// PrevPage decreases the page number
func PrevPage() Action {
	return PrevPageAction{}
}

// UpdateHasNext toggles display of the "next" control in pagination
func UpdateHasNext(hasNext bool) Action {
	return UpdateHasNextAction{HasNext: hasNext}
}

// ResetPagination sets the page number to 1
func ResetPagination() Action {
	return ResetPaginationAction{}
}

// Encode renders an action as a flat JSON object: {"type": TAG, <payload>...}.
func Encode(a Action) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("encode action: nil action")
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", a.Type(), err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: %w", a.Type(), err)
	}
	tag, _ := json.Marshal(a.Type())
	fields["type"] = tag
	return json.Marshal(fields)
}
