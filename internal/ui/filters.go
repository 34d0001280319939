package ui

import (
	"fmt"
	"strconv"
	"strings"

	"moviesearch/internal/actions"
	"moviesearch/internal/state"
)

// field is an editable search parameter
type field int

const (
	fieldKeywords field = iota
	fieldYearMin
	fieldYearMax
	fieldCriticMin
	fieldCriticMax
	fieldUserMin
	fieldUserMax
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Keywords",
	"Year from",
	"Year to",
	"Critic from",
	"Critic to",
	"User from",
	"User to",
}

func (f field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldLabels[f]
}

// fieldValue renders the current value of f for editing; unset is empty
func fieldValue(s state.SearchState, f field) string {
	switch f {
	case fieldKeywords:
		return strings.Join(s.Keywords, " ")
	case fieldYearMin:
		return formatInt(s.YearMin)
	case fieldYearMax:
		return formatInt(s.YearMax)
	case fieldCriticMin:
		return formatFloat(s.CriticMin)
	case fieldCriticMax:
		return formatFloat(s.CriticMax)
	case fieldUserMin:
		return formatFloat(s.UserMin)
	case fieldUserMax:
		return formatFloat(s.UserMax)
	}
	return ""
}

// fieldAction turns the text typed for f into the matching update action.
// Empty text clears the field.
func fieldAction(f field, text string) (actions.Action, error) {
	text = strings.TrimSpace(text)

	switch f {
	case fieldKeywords:
		keywords := strings.Fields(text)
		if len(keywords) == 0 {
			return actions.UpdateKeywords(nil), nil
		}
		return actions.UpdateKeywords(keywords), nil
	case fieldYearMin, fieldYearMax:
		v, err := parseInt(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		if f == fieldYearMin {
			return actions.UpdateYearMin(v), nil
		}
		return actions.UpdateYearMax(v), nil
	case fieldCriticMin, fieldCriticMax, fieldUserMin, fieldUserMax:
		v, err := parseFloat(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		switch f {
		case fieldCriticMin:
			return actions.UpdateCriticMin(v), nil
		case fieldCriticMax:
			return actions.UpdateCriticMax(v), nil
		case fieldUserMin:
			return actions.UpdateUserMin(v), nil
		default:
			return actions.UpdateUserMax(v), nil
		}
	}
	return nil, fmt.Errorf("unknown field %d", f)
}

func parseInt(text string) (*int, error) {
	if text == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("%q is not a whole number", text)
	}
	return &v, nil
}

func parseFloat(text string) (*float64, error) {
	if text == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", text)
	}
	return &v, nil
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
