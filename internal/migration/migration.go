package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	customerdomain "github.com/tradiehq/tradiehq/internal/customer/domain"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	jobdomain "github.com/tradiehq/tradiehq/internal/job/domain"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
)

// Models lists every schema-managed table. Non-postgres dialects have no
// SQL migration path and create these through gorm's AutoMigrate instead.
func Models() []any {
	return []any{
		&identitydomain.User{},
		&orgdomain.Organization{},
		&orgdomain.OrganizationUser{},
		&customerdomain.Customer{},
		&jobdomain.Job{},
	}
}

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "migrations"

// RunMigrations applies all embedded schema migrations so a fresh
// deployment is usable without any manual database setup.
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}
