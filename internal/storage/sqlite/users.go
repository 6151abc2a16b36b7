package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

const userColumns = `id, username, email, mpin_hash, otp, otp_expiry, otp_verified`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var username, otp sql.NullString
	var otpExpiry sql.NullInt64

	if err := row.Scan(&user.ID, &username, &user.Email, &user.PINHash, &otp, &otpExpiry, &user.OTPVerified); err != nil {
		return nil, err
	}

	user.Username = stringPtr(username)
	user.OTP = stringPtr(otp)
	user.OTPExpiry = timePtr(otpExpiry)
	return user, nil
}

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, mpin_hash, otp, otp_expiry, otp_verified)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nullString(user.Username), user.Email, user.PINHash,
		nullString(user.OTP), unixOrNull(user.OTPExpiry), user.OTPVerified,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", classify(err))
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// UpdateUser applies fn to the stored user and writes the mutable fields back.
func (s *SQLiteStore) UpdateUser(ctx context.Context, email string, fn func(*models.User) error) (*models.User, error) {
	var user *models.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		user, err = scanUser(tx.QueryRowContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %s: %w", email, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}

		if err := fn(user); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE users SET mpin_hash = ?, otp = ?, otp_expiry = ?, otp_verified = ? WHERE id = ?`,
			user.PINHash, nullString(user.OTP), unixOrNull(user.OTPExpiry), user.OTPVerified, user.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users ordered by id.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user by ID.
func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "users", "id", id)
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func (s *SQLiteStore) deleteByID(ctx context.Context, table, column string, id int64) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, column), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", table, id, storage.ErrNotFound)
	}
	return nil
}
