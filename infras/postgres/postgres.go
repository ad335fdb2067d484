// Package postgres opens the read and write sqlx pools used by the repositories.
package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"gomoto/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

var ErrNotConnected = errors.New("postgres connection not established")

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New connects both pools and exits the process when either stays unreachable after the
// configured retries.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write, err := connect("write", DSN(pg.Write, pg.Prefix, nil), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("host", pg.Write.Host).Msg("failed to connect to write database")
	}

	read, err := connect("read", DSN(pg.Read, pg.Prefix, nil), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("host", pg.Read.Host).Msg("failed to connect to read database")
	}

	return &Connection{Read: read, Write: write}
}

// DSN renders a postgres URL for the endpoint. The prefix is prepended to the database name
// and params are merged into the query string next to sslmode.
func DSN(endpoint config.PostgresEndpoint, prefix string, params url.Values) string {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}

	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(name, dsn string, cfg *config.Config) (*sqlx.DB, error) {
	pg := cfg.DB.Postgres
	attempts := max(pg.MaxRetry, 1)
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifeMin) * time.Minute)

			log.Info().Str("name", name).Int("attempt", attempt).Msg("connected to database")

			return db, nil
		}

		log.Warn().Err(err).Str("name", name).Int("attempt", attempt).Int("max_attempts", attempts).
			Msg("database not reachable, retrying")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrNotConnected, name, attempts, err)
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Write, c.Read} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
