package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/proteincraft/rincraft/pkg/topology"
)

// PGStore persists per-structure analysis rows in PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a PostgreSQL-backed metrics store.
func NewPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pooling configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &PGStore{pool: pool}

	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

// Ping checks database connectivity
func (s *PGStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the database connection pool
func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}

// migrate creates the necessary database tables
func (s *PGStore) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS rin_metrics (
		id UUID PRIMARY KEY,
		run_id UUID NOT NULL,
		structure TEXT NOT NULL,
		inter_chain_total INTEGER NOT NULL,
		inter_chain_without_vdw INTEGER NOT NULL,
		inter_chain_hbond INTEGER NOT NULL,
		inter_chain_vdw INTEGER NOT NULL,
		inter_chain_other INTEGER NOT NULL,
		binder_components_bonds INTEGER NOT NULL,
		binder_components_bonds_without_vdw INTEGER NOT NULL,
		binder_target_bonds INTEGER NOT NULL,
		binder_target_bonds_largest_component INTEGER NOT NULL,
		binder_target_bonds_no_vdw INTEGER NOT NULL,
		binder_target_bonds_no_vdw_largest_component INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_rin_metrics_run ON rin_metrics(run_id);
	CREATE INDEX IF NOT EXISTS idx_rin_metrics_structure ON rin_metrics(structure);
	`
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// InsertMetrics stores one structure's analysis row under a batch run ID.
func (s *PGStore) InsertMetrics(ctx context.Context, runID uuid.UUID, structure string, m topology.StructureMetrics) error {
	query := `
	INSERT INTO rin_metrics (
		id, run_id, structure,
		inter_chain_total, inter_chain_without_vdw, inter_chain_hbond,
		inter_chain_vdw, inter_chain_other,
		binder_components_bonds, binder_components_bonds_without_vdw,
		binder_target_bonds, binder_target_bonds_largest_component,
		binder_target_bonds_no_vdw, binder_target_bonds_no_vdw_largest_component
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := s.pool.Exec(ctx, query,
		uuid.New(), runID, structure,
		m.InterChainTotal, m.InterChainWithoutVDW, m.InterChainHBond,
		m.InterChainVDW, m.InterChainOther,
		m.BinderComponentsBonds, m.BinderComponentsBondsWithoutVDW,
		m.BinderTargetBonds, m.BinderTargetBondsLargestComponent,
		m.BinderTargetBondsNoVDW, m.BinderTargetBondsNoVDWLargestComponent,
	)
	if err != nil {
		return fmt.Errorf("inserting metrics for %s: %w", structure, err)
	}
	return nil
}
