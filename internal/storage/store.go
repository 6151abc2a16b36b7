// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/Kousthubh02/Chillar/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("record already exists")
	// ErrInUse is returned when a record is still referenced by another table.
	ErrInUse = errors.New("record is still referenced")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateUser loads the user by email, applies fn and saves the result in
	// one transaction. If fn returns an error nothing is written and the
	// error is returned as-is.
	UpdateUser(ctx context.Context, email string, fn func(*models.User) error) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// PersonStore persists transaction counterparties.
type PersonStore interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPerson(ctx context.Context, id int64) (*models.Person, error)
	ListPeople(ctx context.Context) ([]*models.Person, error)
	RenamePerson(ctx context.Context, id int64, name string) (*models.Person, error)
	// DeletePerson fails with ErrInUse while transactions reference the person.
	DeletePerson(ctx context.Context, id int64) error
}

// EventStore persists event labels.
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	RenameEvent(ctx context.Context, id int64, name string) (*models.Event, error)
	// DeleteEvent detaches the event from its transactions.
	DeleteEvent(ctx context.Context, id int64) error
}

// TransactionStore persists transactions.
type TransactionStore interface {
	// CreateTransaction inserts t and sets t.ID.
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
	// ListTransactionDetails joins person and event names.
	ListTransactionDetails(ctx context.Context) ([]*models.TransactionDetail, error)
	// UpdateTransaction is a read-modify-write in one transaction, see UpdateUser.
	UpdateTransaction(ctx context.Context, id int64, fn func(*models.Transaction) error) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// Store defines every storage operation used by the services.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	UserStore
	PersonStore
	EventStore
	TransactionStore

	// Ping checks the connection.
	Ping(ctx context.Context) error
	// Close releases any resources held by the store.
	Close() error
}
