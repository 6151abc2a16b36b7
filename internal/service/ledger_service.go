package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

const (
	maxNameLength   = 50
	maxReasonLength = 500
)

// TransactionInput is a create-transaction payload as decoded from JSON.
// Numeric fields accept numbers or numeric strings.
type TransactionInput struct {
	PersonID   any
	EventID    any
	Amount     any
	Reason     any
	DueDate    any
	Status     any
	PaidAmount any
}

// LedgerStore is the storage the ledger needs.
type LedgerStore interface {
	storage.PersonStore
	storage.EventStore
	storage.TransactionStore
}

// LedgerService manages people, events and transactions.
type LedgerService struct {
	store  LedgerStore
	logger *slog.Logger
	now    func() time.Time
}

// NewLedgerService creates a ledger service.
func NewLedgerService(store LedgerStore, logger *slog.Logger) *LedgerService {
	return &LedgerService{store: store, logger: logger, now: time.Now}
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", badRequest("Name required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", badRequest("Name must be at most %d characters", maxNameLength)
	}
	return name, nil
}

// ListPeople returns every person.
func (s *LedgerService) ListPeople(ctx context.Context) ([]*models.Person, error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return nil, internal("listing people", err)
	}
	return people, nil
}

// CreatePerson adds a person with a unique name.
func (s *LedgerService) CreatePerson(ctx context.Context, name string) (*models.Person, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	person := &models.Person{Name: name}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, conflict("Person with this name already exists", err)
		}
		return nil, internal("creating person", err)
	}
	return person, nil
}

// ListEvents returns every event.
func (s *LedgerService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, internal("listing events", err)
	}
	return events, nil
}

// CreateEvent adds an event with a unique name.
func (s *LedgerService) CreateEvent(ctx context.Context, name string) (*models.Event, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	event := &models.Event{Name: name}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, conflict("Event with this name already exists", err)
		}
		return nil, internal("creating event", err)
	}
	return event, nil
}

// ListTransactions returns transactions joined with person and event names.
func (s *LedgerService) ListTransactions(ctx context.Context) ([]*models.TransactionDetail, error) {
	details, err := s.store.ListTransactionDetails(ctx)
	if err != nil {
		return nil, internal("listing transactions", err)
	}
	return details, nil
}

// DebugListTransactions returns the raw rows.
func (s *LedgerService) DebugListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, internal("listing transactions", err)
	}
	return transactions, nil
}

// CreateTransaction validates in and stores a new transaction.
func (s *LedgerService) CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	var missing []string
	for _, f := range []struct {
		name  string
		value any
	}{
		{"person_id", in.PersonID},
		{"amount", in.Amount},
		{"reason", in.Reason},
		{"due_date", in.DueDate},
	} {
		if isMissing(f.value) {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, badRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	personID, ok := toInt64(in.PersonID)
	if !ok {
		return nil, badRequest("Invalid person_id: %v", in.PersonID)
	}
	if _, err := s.store.GetPerson(ctx, personID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("No person found with person_id: %d", personID)
		}
		return nil, internal("creating transaction", err)
	}

	var eventID *int64
	if in.EventID != nil {
		id, ok := toInt64(in.EventID)
		if !ok {
			return nil, badRequest("Invalid event_id: %v", in.EventID)
		}
		if _, err := s.store.GetEvent(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, notFound("No event found with event_id: %d", id)
			}
			return nil, internal("creating transaction", err)
		}
		eventID = &id
	}

	amount, ok := toFloat(in.Amount)
	if !ok {
		return nil, badRequest("Invalid amount: %v", in.Amount)
	}
	if amount <= 0 {
		return nil, badRequest("Amount must be greater than 0")
	}
	if amount > models.MaxAmount {
		return nil, badRequest("Amount is too large")
	}

	dueRaw, _ := in.DueDate.(string)
	dueDate, err := models.ParseDate(dueRaw)
	if err != nil {
		return nil, badRequest("Invalid due_date format. Use DD-MM-YYYY")
	}

	reasonRaw, isString := in.Reason.(string)
	reason := strings.TrimSpace(reasonRaw)
	if !isString || reason == "" {
		return nil, badRequest("Reason must be a non-empty string")
	}
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return nil, badRequest("Reason must be at most %d characters", maxReasonLength)
	}

	var paid float64
	if !isMissing(in.PaidAmount) {
		if paid, ok = toFloat(in.PaidAmount); !ok {
			return nil, badRequest("Invalid paid_amount: %v", in.PaidAmount)
		}
		if paid < 0 {
			return nil, badRequest("paid_amount must not be negative")
		}
		if paid > models.MaxAmount {
			return nil, badRequest("paid_amount is too large")
		}
	}

	t := &models.Transaction{
		PersonID:    personID,
		EventID:     eventID,
		Amount:      amount,
		PaidAmount:  paid,
		Reason:      reason,
		DueDate:     dueDate,
		Status:      toBool(in.Status),
		CreatedDate: s.now().UTC(),
	}
	t.Settle()

	if err := s.store.CreateTransaction(ctx, t); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("No person found with person_id: %d", personID)
		}
		return nil, internal("creating transaction", err)
	}

	s.logger.Info("Transaction created", "transaction_id", t.ID, "person_id", t.PersonID, "amount", t.Amount)
	return t, nil
}

// UpdateStatus sets the status flag directly from the truthiness of status.
// paid_amount is left alone.
func (s *LedgerService) UpdateStatus(ctx context.Context, id int64, status any) (*models.Transaction, error) {
	if status == nil {
		return nil, badRequest("Status is required")
	}

	t, err := s.store.UpdateTransaction(ctx, id, func(t *models.Transaction) error {
		t.Status = toBool(status)
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("Transaction not found")
		}
		return nil, internal("updating transaction", err)
	}

	s.logger.Info("Transaction status updated", "transaction_id", id, "status", t.Status)
	return t, nil
}

// RecordPayment adds amount to the paid total and settles when covered.
func (s *LedgerService) RecordPayment(ctx context.Context, id int64, amount *float64) (*models.Transaction, error) {
	t, err := s.store.UpdateTransaction(ctx, id, func(t *models.Transaction) error {
		if amount == nil {
			return badRequest("Amount is required")
		}
		if *amount < 0 {
			return badRequest("Amount must not be negative")
		}
		if err := t.ApplyPayment(*amount); err != nil {
			return badRequest("Payment total is too large")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound("Transaction not found")
		}
		if KindOf(err) == KindBadRequest {
			return nil, err
		}
		return nil, internal("recording payment", err)
	}

	s.logger.Info("Payment recorded", "transaction_id", id, "paid_amount", t.PaidAmount, "status", t.Status)
	return t, nil
}

// Totals aggregates transactions per person.
func (s *LedgerService) Totals(ctx context.Context) ([]models.PersonTotal, error) {
	details, err := s.store.ListTransactionDetails(ctx)
	if err != nil {
		return nil, internal("calculating totals", err)
	}
	return models.Totals(details), nil
}
