package eventrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_MarkProcessed(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        INSERT INTO processed_events (event_id)
        VALUES ($1)
        ON CONFLICT (event_id) DO NOTHING
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		fresh     bool
	}{
		{
			name: "First delivery",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("evt_1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
			fresh:     true,
		},
		{
			name: "Redelivery is dropped",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("evt_1").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectErr: false,
			fresh:     false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("evt_1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			fresh:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			fresh, err := repo.MarkProcessed(context.Background(), "evt_1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.fresh, fresh)
		})
	}
}
