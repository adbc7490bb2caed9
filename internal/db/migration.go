package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_accounts",
		sql: `
			CREATE TABLE IF NOT EXISTS accounts (
				id            BIGSERIAL PRIMARY KEY,
				email         VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				full_name     VARCHAR(100),
				height_cm     INT,
				created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
	},
	{
		version: "001_create_health_entries",
		sql: `
			CREATE TABLE IF NOT EXISTS health_entries (
				id               BIGSERIAL PRIMARY KEY,
				account_id       BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
				entry_date       DATE NOT NULL,
				weight           DOUBLE PRECISION,
				systolic         INT,
				diastolic        INT,
				heart_rate       INT,
				sleep_hours      DOUBLE PRECISION,
				exercise_minutes INT,
				mood             VARCHAR(50),
				symptoms         TEXT,
				notes            TEXT,
				created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
				UNIQUE (account_id, entry_date)
			);
			CREATE INDEX IF NOT EXISTS idx_health_entries_account_date
				ON health_entries (account_id, entry_date)`,
	},
	{
		version: "002_create_goals",
		sql: `
			CREATE TABLE IF NOT EXISTS goals (
				id            BIGSERIAL PRIMARY KEY,
				account_id    BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
				goal_type     VARCHAR(50) NOT NULL,
				description   TEXT NOT NULL,
				target_value  DOUBLE PRECISION NOT NULL,
				current_value DOUBLE PRECISION NOT NULL DEFAULT 0,
				target_date   DATE NOT NULL,
				status        VARCHAR(20) NOT NULL DEFAULT 'active',
				created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_goals_account_status
				ON goals (account_id, status)`,
	},
	{
		version: "003_create_insights",
		sql: `
			CREATE TABLE IF NOT EXISTS insights (
				id           BIGSERIAL PRIMARY KEY,
				account_id   BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
				insight_type VARCHAR(50) NOT NULL,
				content      TEXT NOT NULL,
				model        VARCHAR(100) NOT NULL,
				period_start DATE,
				period_end   DATE,
				created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_insights_account_created
				ON insights (account_id, created_at)`,
	},
}

func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(db, m); err != nil {
			return err
		}

		log.Printf("applied migration: %s", m.version)
	}

	return nil
}

func isMigrationApplied(db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = $1",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version) VALUES ($1)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
