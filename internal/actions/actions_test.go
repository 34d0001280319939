package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviesearch/internal/domain"
)

func intPtr(v int) *int         { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestConstructorsCarryTagAndPayload(t *testing.T) {
	movies := []domain.Movie{domain.Movie(`{"id":1}`)}

	tests := []struct {
		name   string
		action Action
		want   Action
		tag    ActionType
	}{
		{"movies", UpdateMovies(movies), UpdateMoviesAction{Movies: movies}, TypeUpdateMovies},
		{"movies nil", UpdateMovies(nil), UpdateMoviesAction{}, TypeUpdateMovies},
		{"keywords", UpdateKeywords([]string{"matrix"}), UpdateKeywordsAction{Keywords: []string{"matrix"}}, TypeUpdateKeywords},
		{"keywords nil", UpdateKeywords(nil), UpdateKeywordsAction{}, TypeUpdateKeywords},
		{"user min", UpdateUserMin(floatPtr(0)), UpdateUserMinAction{UserMin: floatPtr(0)}, TypeUpdateUserMin},
		{"user max nil", UpdateUserMax(nil), UpdateUserMaxAction{}, TypeUpdateUserMax},
		{"year min", UpdateYearMin(intPtr(-1)), UpdateYearMinAction{YearMin: intPtr(-1)}, TypeUpdateYearMin},
		{"year max", UpdateYearMax(intPtr(2100)), UpdateYearMaxAction{YearMax: intPtr(2100)}, TypeUpdateYearMax},
		{"critic min", UpdateCriticMin(floatPtr(99.5)), UpdateCriticMinAction{CriticMin: floatPtr(99.5)}, TypeUpdateCriticMin},
		{"critic max nil", UpdateCriticMax(nil), UpdateCriticMaxAction{}, TypeUpdateCriticMax},
		{"fetching", UpdateFetching(true), UpdateFetchingAction{Fetching: true}, TypeUpdateFetching},
		{"has next", UpdateHasNext(false), UpdateHasNextAction{HasNext: false}, TypeUpdateHasNext},
		{"next page", NextPage(), NextPageAction{}, TypeNextPage},
		{"prev page", PrevPage(), PrevPageAction{}, TypePrevPage},
		{"reset", ResetPagination(), ResetPaginationAction{}, TypeResetPagination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.action.Type())
			assert.Equal(t, tt.want, tt.action)
		})
	}
}

func TestPayloadPointerIsPassedThrough(t *testing.T) {
	v := 1999
	a := UpdateYearMin(&v).(UpdateYearMinAction)
	assert.Same(t, &v, a.YearMin)
}

func TestEncode(t *testing.T) {
	t.Run("payload action", func(t *testing.T) {
		data, err := Encode(UpdateFetching(true))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"UPDATE_FETCHING","fetching":true}`, string(data))
	})

	t.Run("nil payload is kept", func(t *testing.T) {
		data, err := Encode(UpdateUserMin(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"UPDATE_USER_MIN","userMin":null}`, string(data))
	})

	t.Run("movies are passed through", func(t *testing.T) {
		data, err := Encode(UpdateMovies([]domain.Movie{domain.Movie(`{"id":1}`)}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"UPDATE_MOVIES","movies":[{"id":1}]}`, string(data))
	})

	t.Run("zero-argument actions have only a type", func(t *testing.T) {
		for _, a := range []Action{NextPage(), PrevPage(), ResetPagination()} {
			data, err := Encode(a)
			require.NoError(t, err)
			assert.JSONEq(t, `{"type":"`+string(a.Type())+`"}`, string(data))
		}
	})

	t.Run("nil action", func(t *testing.T) {
		_, err := Encode(nil)
		assert.Error(t, err)
	})
}
