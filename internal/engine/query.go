package engine

import (
	"strings"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// BuildQueries derives the comparable-search cascade for a product: the most
// specific query first, degrading to brand-only. The result has between 1 and
// MaxQueries entries. If both brand and name are empty the raw product name
// is returned as a last resort.
func (c Config) BuildQueries(id domain.Identification) []string {
	brand := clean(id.Brand)
	name := clean(id.Name)

	if brand == "" && name == "" {
		return []string{id.Name}
	}

	parts := make([]string, 0, 3)
	if brand != "" {
		parts = append(parts, brand)
	}
	if stripped := stripBrand(name, brand); stripped != "" {
		parts = append(parts, stripped)
	}
	if cw := clean(id.Colorway); cw != "" && !isPlaceholder(cw) {
		parts = append(parts, cw)
	}
	generic := strings.Join(parts, " ")

	specific := generic
	if sz := clean(id.Size); sz != "" && !isPlaceholder(sz) {
		specific = strings.TrimSpace(generic + " size " + sz)
	}

	queries := make([]string, 0, c.MaxQueries)
	if specific != "" {
		queries = append(queries, specific)
	}
	if generic != "" && generic != specific {
		queries = append(queries, generic)
	}
	if brand != "" && brand != specific && brand != generic {
		queries = append(queries, brand)
	}
	if len(queries) > c.MaxQueries {
		queries = queries[:c.MaxQueries]
	}
	return queries
}

// stripBrand removes the first case-insensitive occurrence of brand from
// name and collapses the remaining whitespace.
func stripBrand(name, brand string) string {
	if brand == "" || name == "" {
		return name
	}
	idx := strings.Index(strings.ToLower(name), strings.ToLower(brand))
	if idx < 0 {
		return name
	}
	return strings.Join(strings.Fields(name[:idx]+name[idx+len(brand):]), " ")
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isPlaceholder(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n/a", "na", "none", "unknown":
		return true
	}
	return false
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
