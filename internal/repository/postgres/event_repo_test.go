package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

func TestEventRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	event := &domain.Event{
		Name:       "Tech Symposium",
		Date:       time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		Time:       "10:00 AM",
		Venue:      "Main Auditorium",
		TotalSlots: 150,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectQuery(`INSERT INTO events`).
		WithArgs(event.Name, event.Date, event.Time, event.Venue, event.TotalSlots, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-1"))

	repo := NewEventRepository(db)
	require.NoError(t, repo.Create(context.Background(), event))
	require.Equal(t, "ev-1", event.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, event_date, event_time, venue, total_slots, created_at, updated_at`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "event_date", "event_time", "venue", "total_slots", "created_at", "updated_at"}).
			AddRow("ev-1", "Tech Symposium", now, "10:00 AM", "Main Auditorium", 150, now, now))

	repo := NewEventRepository(db)
	event, err := repo.GetByID(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Equal(t, "Tech Symposium", event.Name)
	require.Equal(t, 150, event.TotalSlots)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, event_date, event_time, venue, total_slots, created_at, updated_at`).
		WithArgs("ev-missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewEventRepository(db)
	_, err = repo.GetByID(context.Background(), "ev-missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`ORDER BY event_date DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "event_date", "event_time", "venue", "total_slots", "created_at", "updated_at"}).
			AddRow("ev-2", "Later Event", now.AddDate(0, 1, 0), "2:00 PM", "Lab 2", 30, now, now).
			AddRow("ev-1", "Earlier Event", now, "10:00 AM", "Hall", 100, now, now))

	repo := NewEventRepository(db)
	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Later Event", events[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
