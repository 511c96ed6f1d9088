package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/config"
)

// Client wraps the Postgres connection pool
type Client struct {
	pool   *pgxpool.Pool
	config *config.Database
	log    *zap.Logger
}

// NewClient creates a new Postgres client with the given configuration. The
// connection is established once per session; callers treat a failure here as
// permanent and fall back to demo data.
func NewClient(ctx context.Context, config *config.Database, log *zap.Logger) (*Client, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(config.User),
		url.QueryEscape(config.Password),
		config.Host,
		config.Port,
		config.Name)

	log.Info("Connecting to Postgres",
		zap.String("host", config.Host),
		zap.String("port", config.Port),
		zap.String("database", config.Name))

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Postgres config: %w", err)
	}
	poolConfig.ConnConfig.ConnectTimeout = time.Duration(config.ConnectTimeoutSec) * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create Postgres pool", zap.Error(err))
		return nil, fmt.Errorf("failed to create Postgres pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error("Failed to ping Postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	log.Info("Postgres connection established successfully")

	return &Client{pool: pool, config: config, log: log}, nil
}

// Pool returns the underlying connection pool
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

// Close closes the Postgres connection pool
func (c *Client) Close() {
	c.log.Info("Closing Postgres connection pool")
	c.pool.Close()
}
