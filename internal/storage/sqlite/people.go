package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

// CreatePerson inserts a person and sets its ID.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	res, err := s.db.ExecContext(ctx, "INSERT INTO people (person_name) VALUES (?)", person.Name)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", classify(err))
	}
	person.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read person id: %w", err)
	}
	return nil
}

// GetPerson retrieves a person by ID.
func (s *SQLiteStore) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	person := &models.Person{}
	err := s.db.QueryRowContext(ctx,
		"SELECT person_id, person_name FROM people WHERE person_id = ?", id,
	).Scan(&person.ID, &person.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("person %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// ListPeople returns all people ordered by id.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT person_id, person_name FROM people ORDER BY person_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person := &models.Person{}
		if err := rows.Scan(&person.ID, &person.Name); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return people, nil
}

// RenamePerson changes a person's name.
func (s *SQLiteStore) RenamePerson(ctx context.Context, id int64, name string) (*models.Person, error) {
	if err := s.rename(ctx, "people", "person_name", "person_id", id, name); err != nil {
		return nil, err
	}
	return &models.Person{ID: id, Name: name}, nil
}

// DeletePerson removes a person that no transaction references.
func (s *SQLiteStore) DeletePerson(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "people", "person_id", id)
}

// CreateEvent inserts an event and sets its ID.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	res, err := s.db.ExecContext(ctx, "INSERT INTO events (event_name) VALUES (?)", event.Name)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", classify(err))
	}
	event.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read event id: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID.
func (s *SQLiteStore) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event := &models.Event{}
	err := s.db.QueryRowContext(ctx,
		"SELECT event_id, event_name FROM events WHERE event_id = ?", id,
	).Scan(&event.ID, &event.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListEvents returns all events ordered by id.
func (s *SQLiteStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT event_id, event_name FROM events ORDER BY event_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(&event.ID, &event.Name); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// RenameEvent changes an event's name.
func (s *SQLiteStore) RenameEvent(ctx context.Context, id int64, name string) (*models.Event, error) {
	if err := s.rename(ctx, "events", "event_name", "event_id", id, name); err != nil {
		return nil, err
	}
	return &models.Event{ID: id, Name: name}, nil
}

// DeleteEvent removes an event; referencing transactions keep a NULL event_id.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "events", "event_id", id)
}

func (s *SQLiteStore) rename(ctx context.Context, table, nameColumn, idColumn string, id int64, name string) error {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", table, nameColumn, idColumn), name, id)
	if err != nil {
		return fmt.Errorf("failed to rename in %s: %w", table, classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to rename in %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", table, id, storage.ErrNotFound)
	}
	return nil
}
