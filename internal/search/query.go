package search

import (
	"strconv"
	"strings"

	"moviesearch/internal/domain"
)

// Endpoint is the backend search path
const Endpoint = "/api/movie"

// BuildQuery joins key=value pairs for every set field with '&', in the order
// keywords, yearMin, yearMax, criticMin, criticMax, userMin, userMax, page.
//
// Values are written verbatim, without URL escaping; the backend has always
// received them this way. Keywords are comma-joined.
func BuildQuery(p domain.SearchParams) string {
	pairs := make([]string, 0, 8)
	add := func(key, value string) {
		pairs = append(pairs, key+"="+value)
	}

	if p.Keywords != nil {
		add("keywords", strings.Join(p.Keywords, ","))
	}
	if p.YearMin != nil {
		add("yearMin", strconv.Itoa(*p.YearMin))
	}
	if p.YearMax != nil {
		add("yearMax", strconv.Itoa(*p.YearMax))
	}
	if p.CriticMin != nil {
		add("criticMin", formatFloat(*p.CriticMin))
	}
	if p.CriticMax != nil {
		add("criticMax", formatFloat(*p.CriticMax))
	}
	if p.UserMin != nil {
		add("userMin", formatFloat(*p.UserMin))
	}
	if p.UserMax != nil {
		add("userMax", formatFloat(*p.UserMax))
	}
	add("page", strconv.Itoa(p.Page))

	return strings.Join(pairs, "&")
}

// RequestPath returns the path and raw query for a search
func RequestPath(p domain.SearchParams) string {
	return Endpoint + "?" + BuildQuery(p)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
