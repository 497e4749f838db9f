package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"storefront/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBackend_Read(t *testing.T) {
	tests := []struct {
		name          string
		document      string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedBody  []byte
		expectedError error
	}{
		{
			name:         "document exists",
			document:     "config",
			mockRows:     sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"BOT_STATUS":"on"}`)),
			expectedBody: []byte(`{"BOT_STATUS":"on"}`),
		},
		{
			name:          "document missing",
			document:      "orders",
			mockError:     sql.ErrNoRows,
			expectedError: storage.ErrNotExist,
		},
		{
			name:          "database error",
			document:      "users",
			mockError:     errors.New("connection reset"),
			expectedError: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			backend := New(db)

			query := "SELECT body FROM documents WHERE name = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.document).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.document).WillReturnRows(tt.mockRows)
			}

			body, err := backend.Read(context.Background(), tt.document)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, storage.ErrNotExist) {
					assert.ErrorIs(t, err, storage.ErrNotExist)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, body)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBackend_Write(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	backend := New(db)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("buttons", `{"main_menu":[]}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = backend.Write(context.Background(), "buttons", []byte(`{"main_menu":[]}`))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackend_WriteError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	backend := New(db)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("users", `{}`).
		WillReturnError(errors.New("disk full"))

	err = backend.Write(context.Background(), "users", []byte(`{}`))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
