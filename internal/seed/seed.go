// Package seed creates the default rows the application expects.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/pkg/auth"
)

// defaultDepartments are created on first startup so admin
// registration has something to reference.
var defaultDepartments = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Registrar's Office",
}

// CreateDefaultData inserts the default departments and a bootstrap
// admin account if they don't exist. Failures are collected and
// returned but the caller is expected to log and continue; a partially
// seeded database is still usable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg BootstrapAdmin, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, name := range defaultDepartments {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createBootstrapAdmin(ctx, dbPool, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// BootstrapAdmin holds the credentials for the first admin account.
type BootstrapAdmin struct {
	Username   string
	Password   string
	BcryptCost int
}

// createBootstrapAdmin inserts the first admin account and its profile
// in one transaction. A no-op when the username already exists.
func createBootstrapAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg BootstrapAdmin, lgr zerolog.Logger) error {
	if cfg.Username == "" || cfg.Password == "" {
		lgr.Debug().Msg("No bootstrap admin configured, skipping")
		return nil
	}

	var exists bool
	if err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`, cfg.Username).Scan(&exists); err != nil {
		lgr.Error().Err(err).Msg("Error checking for bootstrap admin")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Password, cfg.BcryptCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing bootstrap admin password")
		return err
	}

	var departmentID int64
	if err := dbPool.QueryRow(ctx,
		`SELECT id FROM departments ORDER BY id LIMIT 1`).Scan(&departmentID); err != nil {
		lgr.Error().Err(err).Msg("Error finding a department for the bootstrap admin")
		return err
	}

	tx, err := dbPool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var accountID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO accounts (username, password, role) VALUES ($1, $2, $3) RETURNING id`,
		cfg.Username, hashed, models.RoleAdmin).Scan(&accountID); err != nil {
		lgr.Error().Err(err).Msg("Error creating bootstrap admin account")
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO admin_profiles (account_id, department_id) VALUES ($1, $2)`,
		accountID, departmentID); err != nil {
		lgr.Error().Err(err).Msg("Error creating bootstrap admin profile")
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	lgr.Info().Str("username", cfg.Username).Msg("Bootstrap admin account created")
	return nil
}
