package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

const transactionColumns = `t.transaction_id, t.person_id, t.event_id, t.amount, t.paid_amount,
	t.reason, t.due_date, t.status, t.created_date`

func scanTransaction(row rowScanner, extra ...any) (*models.Transaction, error) {
	t := &models.Transaction{}
	var eventID sql.NullInt64
	var dueDate, createdDate int64

	dest := append([]any{&t.ID, &t.PersonID, &eventID, &t.Amount, &t.PaidAmount,
		&t.Reason, &dueDate, &t.Status, &createdDate}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	t.EventID = int64Ptr(eventID)
	t.DueDate = time.Unix(dueDate, 0).UTC()
	t.CreatedDate = time.Unix(createdDate, 0).UTC()
	return t, nil
}

// CreateTransaction persists a new transaction and sets its ID.
// A zero CreatedDate is filled with the current time.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t.CreatedDate.IsZero() {
		t.CreatedDate = s.now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (person_id, event_id, amount, paid_amount, reason, due_date, status, created_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.PersonID, nullInt64(t.EventID), t.Amount, t.PaidAmount, t.Reason,
		t.DueDate.Unix(), t.Status, t.CreatedDate.Unix(),
	)
	if err != nil {
		err = classify(err)
		if errors.Is(err, storage.ErrInUse) {
			// A failed foreign key on insert means the referenced row is missing.
			return fmt.Errorf("failed to insert transaction: %w", storage.ErrNotFound)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read transaction id: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions t WHERE t.transaction_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListTransactions returns all transactions ordered by id.
func (s *SQLiteStore) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
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
func (s *SQLiteStore) ListTransactionDetails(ctx context.Context) ([]*models.TransactionDetail, error) {
	rows, err := s.db.QueryContext(ctx,
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
		var eventName sql.NullString
		t, err := scanTransaction(rows, &personName, &eventName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction detail: %w", err)
		}
		details = append(details, &models.TransactionDetail{
			Transaction: *t,
			PersonName:  personName,
			EventName:   stringPtr(eventName),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction details: %w", err)
	}
	return details, nil
}

// UpdateTransaction applies fn to the stored transaction and saves it.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, id int64, fn func(*models.Transaction) error) (*models.Transaction, error) {
	var t *models.Transaction
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		t, err = scanTransaction(tx.QueryRowContext(ctx,
			`SELECT `+transactionColumns+` FROM transactions t WHERE t.transaction_id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("transaction %d: %w", id, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		if err := fn(t); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE transactions
			 SET event_id = ?, amount = ?, paid_amount = ?, reason = ?, due_date = ?, status = ?
			 WHERE transaction_id = ?`,
			nullInt64(t.EventID), t.Amount, t.PaidAmount, t.Reason, t.DueDate.Unix(), t.Status, t.ID,
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
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "transactions", "transaction_id", id)
}
