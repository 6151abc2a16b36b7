package postgres

import (
	"context"
	"fmt"

	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/storage"
)

// CreatePerson inserts a person and sets its ID.
func (s *PostgresStore) CreatePerson(ctx context.Context, person *models.Person) error {
	err := s.pool.QueryRow(ctx,
		"INSERT INTO people (person_name) VALUES ($1) RETURNING person_id", person.Name,
	).Scan(&person.ID)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", classify(err))
	}
	return nil
}

// GetPerson retrieves a person by ID.
func (s *PostgresStore) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	person := &models.Person{}
	err := s.pool.QueryRow(ctx,
		"SELECT person_id, person_name FROM people WHERE person_id = $1", id,
	).Scan(&person.ID, &person.Name)
	if err != nil {
		return nil, notFound(err, "person", id)
	}
	return person, nil
}

// ListPeople returns all people ordered by id.
func (s *PostgresStore) ListPeople(ctx context.Context) ([]*models.Person, error) {
	rows, err := s.pool.Query(ctx, "SELECT person_id, person_name FROM people ORDER BY person_id")
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
func (s *PostgresStore) RenamePerson(ctx context.Context, id int64, name string) (*models.Person, error) {
	if err := s.rename(ctx, "people", "person_name", "person_id", id, name); err != nil {
		return nil, err
	}
	return &models.Person{ID: id, Name: name}, nil
}

// DeletePerson removes a person that no transaction references.
func (s *PostgresStore) DeletePerson(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "people", "person_id", id)
}

// CreateEvent inserts an event and sets its ID.
func (s *PostgresStore) CreateEvent(ctx context.Context, event *models.Event) error {
	err := s.pool.QueryRow(ctx,
		"INSERT INTO events (event_name) VALUES ($1) RETURNING event_id", event.Name,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", classify(err))
	}
	return nil
}

// GetEvent retrieves an event by ID.
func (s *PostgresStore) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event := &models.Event{}
	err := s.pool.QueryRow(ctx,
		"SELECT event_id, event_name FROM events WHERE event_id = $1", id,
	).Scan(&event.ID, &event.Name)
	if err != nil {
		return nil, notFound(err, "event", id)
	}
	return event, nil
}

// ListEvents returns all events ordered by id.
func (s *PostgresStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	rows, err := s.pool.Query(ctx, "SELECT event_id, event_name FROM events ORDER BY event_id")
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
func (s *PostgresStore) RenameEvent(ctx context.Context, id int64, name string) (*models.Event, error) {
	if err := s.rename(ctx, "events", "event_name", "event_id", id, name); err != nil {
		return nil, err
	}
	return &models.Event{ID: id, Name: name}, nil
}

// DeleteEvent removes an event; the foreign key nulls it out on transactions.
func (s *PostgresStore) DeleteEvent(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "events", "event_id", id)
}

func (s *PostgresStore) rename(ctx context.Context, table, nameColumn, idColumn string, id int64, name string) error {
	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2", table, nameColumn, idColumn), name, id)
	if err != nil {
		return fmt.Errorf("failed to rename in %s: %w", table, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", table, id, storage.ErrNotFound)
	}
	return nil
}
