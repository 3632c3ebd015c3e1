package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/yinpa-bot/yinpa/internal/errors"
)

// notFound builds the NotFound error for an unknown alias, attaching the
// closest alias as a suggestion when one is near enough.
func notFound(kind, query string, aliases []string) *errors.Error {
	err := errors.NotFoundf("%s %q not found", kind, query)
	if s := suggest(query, aliases); s != "" {
		err.WithMeta(errors.MetaSuggestion, s)
	}
	return err
}

func notFoundID(kind string, id int) *errors.Error {
	return errors.NotFoundf("%s %d not found", kind, id).WithMeta("id", id)
}

func suggest(query string, aliases []string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return ""
	}

	best := ""
	bestDist := -1
	for _, alias := range aliases {
		candidate := strings.ToLower(alias)
		length := utf8.RuneCountInString(candidate)
		dist := levenshtein.ComputeDistance(query, candidate)
		// replacing the whole alias is not a typo
		if dist >= length || dist > levenshteinLimit(length) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = alias, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Suggestion returns the alias attached to a catalog NotFound error, if any
func Suggestion(err error) string {
	s, _ := errors.GetMeta(err)[errors.MetaSuggestion].(string)
	return s
}
