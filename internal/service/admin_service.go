package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Kousthubh02/Chillar/internal/auth"
	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

// Counts summarises the records shown on the admin index.
type Counts struct {
	Users            int
	People           int
	Events           int
	Transactions     int
	OpenTransactions int
}

// AdminService checks admin credentials and manages records directly.
type AdminService struct {
	store       storage.Store
	credentials map[string]string
	logger      *slog.Logger
}

// NewAdminService creates an admin service. credentials maps username to bcrypt hash.
func NewAdminService(store storage.Store, credentials map[string]string, logger *slog.Logger) *AdminService {
	return &AdminService{store: store, credentials: credentials, logger: logger}
}

// Authenticate checks an admin username and password.
func (s *AdminService) Authenticate(username, password string) error {
	hash, ok := s.credentials[username]
	if !ok || username == "" || !auth.CheckPIN(hash, password) {
		s.logger.Warn("Admin login failed", "username", username)
		return unauthorized("Invalid credentials", nil)
	}
	return nil
}

// Counts returns record counts.
func (s *AdminService) Counts(ctx context.Context) (*Counts, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, internal("loading dashboard", err)
	}
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return nil, internal("loading dashboard", err)
	}
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, internal("loading dashboard", err)
	}
	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, internal("loading dashboard", err)
	}

	counts := &Counts{
		Users:        len(users),
		People:       len(people),
		Events:       len(events),
		Transactions: len(transactions),
	}
	for _, t := range transactions {
		if !t.Status {
			counts.OpenTransactions++
		}
	}
	return counts, nil
}

// ListUsers returns all accounts.
func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, internal("listing users", err)
	}
	return users, nil
}

// DeleteUser removes an account.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleted("User", id, s.store.DeleteUser(ctx, id))
}

// ListPeople returns all people.
func (s *AdminService) ListPeople(ctx context.Context) ([]*models.Person, error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return nil, internal("listing people", err)
	}
	return people, nil
}

// RenamePerson changes a person's name.
func (s *AdminService) RenamePerson(ctx context.Context, id int64, name string) (*models.Person, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	person, err := s.store.RenamePerson(ctx, id, name)
	if err != nil {
		return nil, renameError("Person", err)
	}
	return person, nil
}

// DeletePerson removes a person without transactions.
func (s *AdminService) DeletePerson(ctx context.Context, id int64) error {
	err := s.store.DeletePerson(ctx, id)
	if errors.Is(err, storage.ErrInUse) {
		return conflict("Person still has transactions", err)
	}
	return s.deleted("Person", id, err)
}

// ListEvents returns all events.
func (s *AdminService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, internal("listing events", err)
	}
	return events, nil
}

// RenameEvent changes an event's name.
func (s *AdminService) RenameEvent(ctx context.Context, id int64, name string) (*models.Event, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	event, err := s.store.RenameEvent(ctx, id, name)
	if err != nil {
		return nil, renameError("Event", err)
	}
	return event, nil
}

// DeleteEvent removes an event and detaches its transactions.
func (s *AdminService) DeleteEvent(ctx context.Context, id int64) error {
	return s.deleted("Event", id, s.store.DeleteEvent(ctx, id))
}

// ListTransactions returns transactions with names.
func (s *AdminService) ListTransactions(ctx context.Context) ([]*models.TransactionDetail, error) {
	details, err := s.store.ListTransactionDetails(ctx)
	if err != nil {
		return nil, internal("listing transactions", err)
	}
	return details, nil
}

// DeleteTransaction removes a transaction.
func (s *AdminService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.deleted("Transaction", id, s.store.DeleteTransaction(ctx, id))
}

func (s *AdminService) deleted(what string, id int64, err error) error {
	switch {
	case err == nil:
		s.logger.Info("Admin deleted record", "type", what, "id", id)
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return notFound("%s not found", what)
	default:
		return internal("deleting "+strings.ToLower(what), err)
	}
}

func renameError(what string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return notFound("%s not found", what)
	case errors.Is(err, storage.ErrDuplicate):
		return conflict(what+" with this name already exists", err)
	default:
		return internal("renaming "+strings.ToLower(what), err)
	}
}
