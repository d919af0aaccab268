package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Email folds case so that lookups and the unique index agree.
func Email(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// Query collapses whitespace and folds case; equal queries share a cache entry.
func Query(query string) string {
	return cases.Fold().String(strings.Join(strings.Fields(query), " "))
}

// Name trims and collapses inner whitespace, keeping the original case.
func Name(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
