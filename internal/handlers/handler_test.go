package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"evently/internal/middleware"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	r.POST("/v1/events", CreateEvent)
	r.GET("/v1/events/:slug", GetEvent)
	r.POST("/v1/bookings", CreateBooking)
	return r, mock
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validEventRequest() EventRequest {
	return EventRequest{
		Title:       "AI Developers Hackathon",
		Description: "A weekend-long hackathon.",
		Overview:    "Build something with AI.",
		Image:       "/images/event2.png",
		Venue:       "Online",
		Location:    "Online",
		Date:        "April 10, 2026",
		Time:        "10:00 AM",
		Mode:        "online",
		Audience:    "Developers",
		Agenda:      []string{"Kickoff", "Hacking", "Demos"},
		Organizer:   "Dev Community",
		Tags:        []string{"ai", "hackathon"},
	}
}

func TestCreateEventHandler(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "events"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performJSON(t, r, http.MethodPost, "/v1/events", validEventRequest())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ai-developers-hackathon"`)
	assert.Contains(t, w.Body.String(), `"2026-04-10"`)
	assert.Contains(t, w.Body.String(), `"10:00"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEventHandlerValidationFailure(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := validEventRequest()
	req.Title = "ab"
	w := performJSON(t, r, http.MethodPost, "/v1/events", req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title must be at least 3 characters")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventHandlerNotFound(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "/v1/events/no-such-event", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Event not found.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingHandlerMissingEvent(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	eventID := uuid.NewString()
	w := performJSON(t, r, http.MethodPost, "/v1/bookings", BookingRequest{
		EventID: eventID,
		Email:   "attendee@example.com",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), eventID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingHandlerInvalidEventID(t *testing.T) {
	r, _ := setupRouter(t)

	w := performJSON(t, r, http.MethodPost, "/v1/bookings", BookingRequest{
		EventID: "not-a-uuid",
		Email:   "attendee@example.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid event ID format.")
}

func TestCreateBookingHandlerDuplicateEmail(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO "bookings"`).WillReturnError(&pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: "idx_bookings_email",
	})
	mock.ExpectRollback()

	w := performJSON(t, r, http.MethodPost, "/v1/bookings", BookingRequest{
		EventID: uuid.NewString(),
		Email:   "attendee@example.com",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "A booking with this email already exists.")
	require.NoError(t, mock.ExpectationsWereMet())
}
