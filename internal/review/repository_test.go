package review

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), mock
}

func TestRepository_FindEligible(t *testing.T) {
	repo, mock := setupMock(t)
	end := time.Date(2030, 1, 1, 11, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.id = $1 AND b.mentee_id = $2 AND b.status = 'confirmed'")).
		WithArgs(10, 5).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "mentor_id", "end_ts"}).AddRow(10, 2, end))

	e, err := repo.FindEligible(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, e.MentorID)
	assert.True(t, e.EndTime.Equal(end))

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b")).
		WithArgs(11, 5).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "mentor_id", "end_ts"}))

	_, err = repo.FindEligible(context.Background(), 11, 5)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews (booking_id, mentee_id, mentor_id, rating, comment)")).
		WithArgs(10, 5, 2, 4, "good").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "mentee_id", "mentor_id", "rating", "comment", "created_at"}).
			AddRow(1, 10, 5, 2, 4, "good", time.Now()))

	created, err := repo.Insert(context.Background(), &Review{BookingID: 10, MenteeID: 5, MentorID: 2, Rating: 4, Comment: "good"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListForMentor(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reviews WHERE mentor_id = $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(2, 5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "mentee_id", "mentor_id", "rating", "comment", "created_at", "mentee_name", "mentee_surname"}).
			AddRow(3, 12, 5, 2, 5, "", now, "Luca", "Bianchi"))

	reviews, total, err := repo.ListForMentor(context.Background(), 2, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Luca", reviews[0].MenteeName)
	assert.Equal(t, 5, reviews[0].Rating)
	require.NoError(t, mock.ExpectationsWereMet())
}
