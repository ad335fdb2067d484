package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"gomoto/config"
	"gomoto/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

const (
	DirectionUp      = "up"
	DirectionDown    = "down"
	DirectionStepUp  = "step-up"
	DirectionDrop    = "drop"
	DirectionVersion = "version"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

// DatabaseURL builds the golang-migrate postgres URL from the write connection.
func DatabaseURL(cfg *config.Config) string {
	params := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		params.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix, params)
}

// Migrate runs one direction against migrations/postgres.
func Migrate(cfg *config.Config, direction string) (err error) {
	mig, err := migrate.New(migrationSource, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	defer func() {
		sourceErr, dbErr := mig.Close()
		if closeErr := errors.Join(sourceErr, dbErr); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close migrate instance")
		}
	}()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDrop:
		err = mig.Down()
	case DirectionVersion:
		return logVersion(mig)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("direction", direction).Msg("database schema already up to date")

		return nil
	}

	log.Info().Str("direction", direction).Msg("database migration completed")

	return logVersion(mig)
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("no migration applied")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("database migration version")

	return nil
}

func Up(cfg *config.Config) error {
	return Migrate(cfg, DirectionUp)
}
