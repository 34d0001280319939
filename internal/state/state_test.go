package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviesearch/internal/actions"
	"moviesearch/internal/domain"
)

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, 1, s.Page)
	assert.False(t, s.Fetching)
	assert.Nil(t, s.Keywords)
	assert.Nil(t, s.YearMin)
	assert.Nil(t, s.Movies)
}

func TestReduceSetsFields(t *testing.T) {
	year := 1999
	score := 7.5
	movies := []domain.Movie{domain.Movie(`{"id":1}`)}

	s := Initial()
	s = Reduce(s, actions.UpdateKeywords([]string{"matrix"}))
	s = Reduce(s, actions.UpdateYearMin(&year))
	s = Reduce(s, actions.UpdateYearMax(&year))
	s = Reduce(s, actions.UpdateCriticMin(&score))
	s = Reduce(s, actions.UpdateCriticMax(&score))
	s = Reduce(s, actions.UpdateUserMin(&score))
	s = Reduce(s, actions.UpdateUserMax(&score))
	s = Reduce(s, actions.UpdateFetching(true))
	s = Reduce(s, actions.UpdateHasNext(true))
	s = Reduce(s, actions.UpdateMovies(movies))

	assert.Equal(t, []string{"matrix"}, s.Keywords)
	assert.Equal(t, &year, s.YearMin)
	assert.Equal(t, &year, s.YearMax)
	assert.Equal(t, &score, s.CriticMin)
	assert.Equal(t, &score, s.CriticMax)
	assert.Equal(t, &score, s.UserMin)
	assert.Equal(t, &score, s.UserMax)
	assert.True(t, s.Fetching)
	assert.True(t, s.HasNext)
	assert.Equal(t, movies, s.Movies)

	s = Reduce(s, actions.UpdateYearMin(nil))
	assert.Nil(t, s.YearMin)
}

func TestReducePagination(t *testing.T) {
	s := Initial()

	s = Reduce(s, actions.NextPage())
	s = Reduce(s, actions.NextPage())
	assert.Equal(t, 3, s.Page)

	s = Reduce(s, actions.PrevPage())
	assert.Equal(t, 2, s.Page)

	s = Reduce(s, actions.ResetPagination())
	assert.Equal(t, 1, s.Page)

	s = Reduce(s, actions.PrevPage())
	assert.Equal(t, 1, s.Page, "page should not drop below 1")
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	before := Initial()
	after := Reduce(before, actions.NextPage())
	assert.Equal(t, 1, before.Page)
	assert.Equal(t, 2, after.Page)
}

func TestParams(t *testing.T) {
	year := 2001
	s := Initial()
	s = Reduce(s, actions.UpdateKeywords([]string{"space", "odyssey"}))
	s = Reduce(s, actions.UpdateYearMax(&year))
	s = Reduce(s, actions.UpdateFetching(true))

	assert.Equal(t, domain.SearchParams{
		Keywords: []string{"space", "odyssey"},
		YearMax:  &year,
		Page:     1,
	}, s.Params())
}
