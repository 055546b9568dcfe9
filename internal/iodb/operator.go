// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
// The connection string comes from the credentials file if it is
// given, otherwise it is built from config fields.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn, err := connString(cfg)
	if err != nil {
		return err
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil && cfg.CredentialsFile != "" {
		return CredentialsParseError(cfg.CredentialsFile, err)
	}
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// the pipeline is sequential, a small pool is enough
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	cc := poolConfig.ConnConfig
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cc.Host, int(cc.Port),
			cc.Database, cc.User, err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cc.Host, int(cc.Port),
			cc.Database, cc.User, err)
	}

	p.pool = pool
	return nil
}

// connString returns PostgreSQL connection URI.
func connString(cfg *config.DatabaseConfig) (string, error) {
	if cfg.CredentialsFile != "" {
		bs, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return "", ReadCredentialsError(cfg.CredentialsFile, err)
		}
		res := strings.TrimSpace(string(bs))
		if res == "" {
			return "", ReadCredentialsError(
				cfg.CredentialsFile,
				fmt.Errorf("file is empty"),
			)
		}
		return res, nil
	}

	res := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
	return res, nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for advanced
// operations.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in the current
// schema.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = current_schema()
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// DropTables drops given tables if they exist.
func (p *pgxOperator) DropTables(
	ctx context.Context,
	tableNames ...string,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " +
			pgx.Identifier{table}.Sanitize()
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}
