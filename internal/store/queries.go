package store

// SQL query constants. All SQL lives here; PostgresStore methods reference
// these constants. The denormalized brand, category, demand and market_price
// columns exist only for filtering and ordering; the JSONB documents are the
// source of truth.

const (
	queryInsertAnalysis = `
		INSERT INTO analyses (
			id, brand, category, demand, market_price,
			identification, market, raw_ladder, ladder,
			condition, content, strategy, samples,
			created_at, updated_at
		) VALUES (
			@id, @brand, @category, @demand, @market_price,
			@identification, @market, @raw_ladder, @ladder,
			@condition, @content, @strategy, @samples,
			now(), now()
		)
		RETURNING created_at, updated_at`

	queryGetAnalysis = `
		SELECT id, created_at, updated_at,
			identification, market, raw_ladder, ladder,
			condition, content, strategy, samples
		FROM analyses
		WHERE id = $1`

	queryListStaleAnalyses = `
		SELECT id, created_at, updated_at,
			identification, market, raw_ladder, ladder,
			condition, content, strategy, samples
		FROM analyses
		WHERE updated_at < $1
		ORDER BY updated_at ASC
		LIMIT $2`

	queryUpdateAnalysisMarket = `
		UPDATE analyses SET
			market = $2,
			raw_ladder = $3,
			ladder = $4,
			samples = $5,
			demand = $6,
			market_price = $7,
			updated_at = now()
		WHERE id = $1`

	queryDeleteAnalysis = `DELETE FROM analyses WHERE id = $1`
)
