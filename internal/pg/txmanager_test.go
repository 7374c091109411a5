package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapConflict(t *testing.T) {
	t.Run("Serialization failure maps to ErrTxConflict", func(t *testing.T) {
		err := wrapConflict(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})
		assert.ErrorIs(t, err, ErrTxConflict)
	})

	t.Run("Deadlock maps to ErrTxConflict", func(t *testing.T) {
		err := wrapConflict(fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40P01"}))
		assert.ErrorIs(t, err, ErrTxConflict)
	})

	t.Run("Other database errors pass through", func(t *testing.T) {
		orig := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
		err := wrapConflict(orig)
		assert.NotErrorIs(t, err, ErrTxConflict)
		assert.ErrorIs(t, err, orig)
	})

	t.Run("Plain errors pass through", func(t *testing.T) {
		orig := errors.New("boom")
		assert.Equal(t, orig, wrapConflict(orig))
	})
}
