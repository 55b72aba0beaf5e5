package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated     = "created_at"
	orderByMarketPrice = "market_price"
	orderByDemand      = "demand"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated:     "created_at DESC",
	orderByMarketPrice: "market_price DESC",
	orderByDemand:      "demand_rank DESC, created_at DESC",
}

const defaultOrderBy = "created_at DESC"

const baseAnalysesSelect = `SELECT id, created_at, updated_at,
	identification, market, raw_ladder, ladder,
	condition, content, strategy, samples
FROM analyses`

const countAnalysesSelect = "SELECT COUNT(*) FROM analyses"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an analysis
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *AnalysisQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Brand != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(brand) = LOWER($%d)", paramIdx))
		args = append(args, *q.Brand)
		paramIdx++
	}

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(category) = LOWER($%d)", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.Demand != nil {
		conditions = append(conditions, fmt.Sprintf("demand = $%d", paramIdx))
		args = append(args, *q.Demand)
		paramIdx++
	}

	if q.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("market_price >= $%d", paramIdx))
		args = append(args, *q.MinPrice)
		paramIdx++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("market_price <= $%d", paramIdx))
		args = append(args, *q.MaxPrice)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAnalysesSelect, whereClause, orderClause, q.EffectiveLimit(), q.EffectiveOffset(),
	)

	countSQL = countAnalysesSelect + whereClause

	return dataSQL, countSQL, args
}

// EffectiveLimit returns the limit the query actually runs with: the default
// when unset and clamped to the maximum otherwise. Callers echoing pagination
// back to clients should report this value, not the raw input.
func (q *AnalysisQuery) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

// EffectiveOffset returns the offset the query actually runs with.
func (q *AnalysisQuery) EffectiveOffset() int {
	return max(q.Offset, 0)
}
