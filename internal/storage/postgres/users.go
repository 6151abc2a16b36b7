package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

const userColumns = `id, username, email, mpin_hash, otp, otp_expiry, otp_verified`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	var username, otp pgtype.Text
	var otpExpiry pgtype.Timestamptz

	if err := row.Scan(&user.ID, &username, &user.Email, &user.PINHash, &otp, &otpExpiry, &user.OTPVerified); err != nil {
		return nil, err
	}

	user.Username = textPtr(username)
	user.OTP = textPtr(otp)
	user.OTPExpiry = timestampPtr(otpExpiry)
	return user, nil
}

// CreateUser inserts a new user and sets its ID.
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, mpin_hash, otp, otp_expiry, otp_verified)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		textOrNull(user.Username), user.Email, user.PINHash,
		textOrNull(user.OTP), timestampOrNull(user.OTPExpiry), user.OTPVerified,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", classify(err))
	}
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, notFound(err, "user", email)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "user", id)
	}
	return user, nil
}

// UpdateUser locks the user row, applies fn and writes the mutable fields back.
func (s *PostgresStore) UpdateUser(ctx context.Context, email string, fn func(*models.User) error) (*models.User, error) {
	var user *models.User
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		user, err = scanUser(tx.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE email = $1 FOR UPDATE`, email))
		if err != nil {
			return notFound(err, "user", email)
		}

		if err := fn(user); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET mpin_hash = $1, otp = $2, otp_expiry = $3, otp_verified = $4 WHERE id = $5`,
			user.PINHash, textOrNull(user.OTP), timestampOrNull(user.OTPExpiry), user.OTPVerified, user.ID,
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
func (s *PostgresStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
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
func (s *PostgresStore) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "users", "id", id)
}

func (s *PostgresStore) deleteByID(ctx context.Context, table, column string, id int64) error {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, column), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", table, id, storage.ErrNotFound)
	}
	return nil
}
