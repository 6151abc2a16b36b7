package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

const transactionColumns = `t.transaction_id, t.person_id, t.event_id, t.amount, t.paid_amount,
	t.reason, t.due_date, t.status, t.created_date`

func scanTransaction(row pgx.Row, extra ...any) (*models.Transaction, error) {
	t := &models.Transaction{}
	var eventID pgtype.Int8
	var dueDate pgtype.Date
	var createdDate pgtype.Timestamptz

	dest := append([]any{&t.ID, &t.PersonID, &eventID, &t.Amount, &t.PaidAmount,
		&t.Reason, &dueDate, &t.Status, &createdDate}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	t.EventID = int8Ptr(eventID)
	if dueDate.Valid {
		t.DueDate = dueDate.Time.UTC()
	}
	if createdDate.Valid {
		t.CreatedDate = createdDate.Time.UTC()
	}
	return t, nil
}

// CreateTransaction persists a new transaction and sets its ID.
func (s *PostgresStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t.CreatedDate.IsZero() {
		t.CreatedDate = s.now().UTC()
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO transactions (person_id, event_id, amount, paid_amount, reason, due_date, status, created_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING transaction_id`,
		t.PersonID, int8OrNull(t.EventID), t.Amount, t.PaidAmount, t.Reason,
		pgtype.Date{Time: t.DueDate, Valid: true}, t.Status,
		pgtype.Timestamptz{Time: t.CreatedDate, Valid: true},
	).Scan(&t.ID)
	if err != nil {
		err = classify(err)
		if errors.Is(err, storage.ErrInUse) {
			return fmt.Errorf("failed to insert transaction: %w", storage.ErrNotFound)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *PostgresStore) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	t, err := scanTransaction(s.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions t WHERE t.transaction_id = $1`, id))
	if err != nil {
		return nil, notFound(err, "transaction", id)
	}
	return t, nil
}

// ListTransactions returns all transactions ordered by id.
func (s *PostgresStore) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions t ORDER BY t.transaction_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// ListTransactionDetails returns all transactions with person and event names.
func (s *PostgresStore) ListTransactionDetails(ctx context.Context) ([]*models.TransactionDetail, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+transactionColumns+`, p.person_name, e.event_name
		 FROM transactions t
		 JOIN people p ON p.person_id = t.person_id
		 LEFT JOIN events e ON e.event_id = t.event_id
		 ORDER BY t.transaction_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction details: %w", err)
	}
	defer rows.Close()

	var details []*models.TransactionDetail
	for rows.Next() {
		var personName string
		var eventName pgtype.Text
		t, err := scanTransaction(rows, &personName, &eventName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction detail: %w", err)
		}
		details = append(details, &models.TransactionDetail{
			Transaction: *t,
			PersonName:  personName,
			EventName:   textPtr(eventName),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction details: %w", err)
	}
	return details, nil
}

// UpdateTransaction locks the row, applies fn and saves the result.
func (s *PostgresStore) UpdateTransaction(ctx context.Context, id int64, fn func(*models.Transaction) error) (*models.Transaction, error) {
	var t *models.Transaction
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		t, err = scanTransaction(tx.QueryRow(ctx,
			`SELECT `+transactionColumns+` FROM transactions t WHERE t.transaction_id = $1 FOR UPDATE`, id))
		if err != nil {
			return notFound(err, "transaction", id)
		}

		if err := fn(t); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE transactions
			 SET event_id = $1, amount = $2, paid_amount = $3, reason = $4, due_date = $5, status = $6
			 WHERE transaction_id = $7`,
			int8OrNull(t.EventID), t.Amount, t.PaidAmount, t.Reason,
			pgtype.Date{Time: t.DueDate, Valid: true}, t.Status, t.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update transaction: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *PostgresStore) DeleteTransaction(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "transactions", "transaction_id", id)
}
