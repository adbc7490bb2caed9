package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/healthtrackai/health-tracker-backend/internal/domain"
)

type Account struct {
	ID           int64
	Email        string
	PasswordHash string
}

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(email, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRow(
		`INSERT INTO accounts (email, password_hash) VALUES ($1, $2) RETURNING id`,
		email, passwordHash,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}
	return id, nil
}

func (r *AccountRepository) GetByEmail(email string) (*Account, error) {
	var account Account
	err := r.db.QueryRow(
		`SELECT id, email, password_hash FROM accounts WHERE email = $1`,
		email,
	).Scan(&account.ID, &account.Email, &account.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) GetProfile(id int64) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRow(
		`SELECT id, email, full_name, height_cm, created_at, updated_at
		 FROM accounts WHERE id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.FullName, &a.HeightCm, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &a, nil
}

// UpdateProfile applies a partial update over the allow-listed profile
// columns.
func (r *AccountRepository) UpdateProfile(id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	allowed := map[string]bool{"full_name": true, "height_cm": true}

	var setClauses []string
	var args []interface{}
	for k, v := range fields {
		if !allowed[k] {
			continue
		}
		args = append(args, v)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", k, len(args)))
	}

	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE accounts SET %s, updated_at = now() WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args),
	)

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure (duplicate email on registration).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
