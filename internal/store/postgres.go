package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// SaveAnalysis inserts a completed analysis. CreatedAt and UpdatedAt are set
// from the database clock on return.
func (s *PostgresStore) SaveAnalysis(ctx context.Context, a *domain.Analysis) error {
	docs, err := marshalAnalysisDocs(a)
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"id":             a.ID,
		"brand":          a.Identification.Brand,
		"category":       a.Identification.Category,
		"demand":         string(a.Market.Demand),
		"market_price":   a.Ladder.Market,
		"identification": docs.identification,
		"market":         docs.market,
		"raw_ladder":     docs.rawLadder,
		"ladder":         docs.ladder,
		"condition":      docs.condition,
		"content":        docs.content,
		"strategy":       docs.strategy,
		"samples":        docs.samples,
	}

	err = s.pool.QueryRow(ctx, queryInsertAnalysis, args).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves an analysis by its ID.
func (s *PostgresStore) GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error) {
	a := &domain.Analysis{}
	err := scanAnalysis(s.pool.QueryRow(ctx, queryGetAnalysis, id), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAnalyses queries analyses with optional filters, returning results and
// total count.
func (s *PostgresStore) ListAnalyses(
	ctx context.Context,
	opts *AnalysisQuery,
) ([]domain.Analysis, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting analyses: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	analyses, err := collectAnalyses(rows)
	if err != nil {
		return nil, 0, err
	}
	return analyses, total, nil
}

// ListStaleAnalyses returns analyses whose market data has not been refreshed
// within olderThan, oldest first.
func (s *PostgresStore) ListStaleAnalyses(
	ctx context.Context,
	olderThan time.Duration,
	limit int,
) ([]domain.Analysis, error) {
	cutoff := time.Now().Add(-olderThan)

	rows, err := s.pool.Query(ctx, queryListStaleAnalyses, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("querying stale analyses: %w", err)
	}
	defer rows.Close()

	return collectAnalyses(rows)
}

// UpdateAnalysisMarket replaces the market-derived parts of an analysis after
// a refresh run.
func (s *PostgresStore) UpdateAnalysisMarket(
	ctx context.Context,
	id string,
	market domain.MarketSummary,
	rawLadder domain.PriceLadder,
	ladder domain.PriceLadder,
	samples []domain.SoldListing,
) error {
	marketJSON, err := json.Marshal(market)
	if err != nil {
		return fmt.Errorf("marshaling market: %w", err)
	}
	rawJSON, err := json.Marshal(rawLadder)
	if err != nil {
		return fmt.Errorf("marshaling raw ladder: %w", err)
	}
	ladderJSON, err := json.Marshal(ladder)
	if err != nil {
		return fmt.Errorf("marshaling ladder: %w", err)
	}
	samplesJSON, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("marshaling samples: %w", err)
	}

	tag, err := s.pool.Exec(ctx, queryUpdateAnalysisMarket,
		id, marketJSON, rawJSON, ladderJSON, samplesJSON,
		string(market.Demand), ladder.Market,
	)
	if err != nil {
		return fmt.Errorf("updating analysis market: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAnalysis removes an analysis by its ID.
func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteAnalysis, id)
	if err != nil {
		return fmt.Errorf("deleting analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// analysisDocs holds the marshaled JSONB documents for one analysis row.
type analysisDocs struct {
	identification []byte
	market         []byte
	rawLadder      []byte
	ladder         []byte
	condition      []byte
	content        []byte
	strategy       []byte
	samples        []byte
}

func marshalAnalysisDocs(a *domain.Analysis) (*analysisDocs, error) {
	var (
		docs analysisDocs
		err  error
	)
	for _, f := range []struct {
		name string
		dst  *[]byte
		src  any
	}{
		{"identification", &docs.identification, a.Identification},
		{"market", &docs.market, a.Market},
		{"raw_ladder", &docs.rawLadder, a.RawLadder},
		{"ladder", &docs.ladder, a.Ladder},
		{"condition", &docs.condition, a.Condition},
		{"content", &docs.content, a.Content},
		{"strategy", &docs.strategy, a.Strategy},
		{"samples", &docs.samples, a.Samples},
	} {
		*f.dst, err = json.Marshal(f.src)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", f.name, err)
		}
	}
	return &docs, nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner, a *domain.Analysis) error {
	var identJSON, marketJSON, rawJSON, ladderJSON []byte
	var condJSON, contentJSON, strategyJSON, samplesJSON []byte

	if err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
		&identJSON, &marketJSON, &rawJSON, &ladderJSON,
		&condJSON, &contentJSON, &strategyJSON, &samplesJSON,
	); err != nil {
		return err
	}

	for _, f := range []struct {
		name string
		src  []byte
		dst  any
	}{
		{"identification", identJSON, &a.Identification},
		{"market", marketJSON, &a.Market},
		{"raw_ladder", rawJSON, &a.RawLadder},
		{"ladder", ladderJSON, &a.Ladder},
		{"condition", condJSON, &a.Condition},
		{"content", contentJSON, &a.Content},
		{"strategy", strategyJSON, &a.Strategy},
		{"samples", samplesJSON, &a.Samples},
	} {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return fmt.Errorf("unmarshaling %s: %w", f.name, err)
		}
	}
	return nil
}

func collectAnalyses(rows pgx.Rows) ([]domain.Analysis, error) {
	var analyses []domain.Analysis
	for rows.Next() {
		var a domain.Analysis
		if err := scanAnalysis(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return analyses, nil
}
