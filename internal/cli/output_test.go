package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviesearch/internal/domain"
)

func TestExitError(t *testing.T) {
	base := errors.New("boom")
	err := WrapExitError(ExitCommandError, "failed to load config", base)

	assert.Equal(t, "failed to load config: boom", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("other")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "bad"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestWriteResults_Text(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, "text", Results{
		Page:    2,
		HasNext: true,
		Movies: []domain.Movie{
			domain.Movie(`{"title":"Alien","year":1979,"userScore":8.5}`),
			domain.Movie(`{"id":7}`),
		},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, "Page 2: 2 movies\n 1. Alien (1979)  user 8.5\n 2. (untitled)\nMore results: --page 3\n", buf.String())
}

func TestWriteResults_TextWithoutScores(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, "text", Results{
		Page:   1,
		Movies: []domain.Movie{domain.Movie(`{"title":"Alien","criticScore":97}`)},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, "Page 1: 1 movies\n 1. Alien\n", buf.String())
}

func TestWriteResults_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, "json", Results{Page: 1}, true))

	assert.JSONEq(t, `{"page":1,"hasNext":false,"movies":[]}`, buf.String())
}
