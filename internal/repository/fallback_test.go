package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"usina-leads/internal/metrics"
)

func TestIsMissingRelation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pg undefined table", &pgconn.PgError{Code: "42P01"}, true},
		{"pg wrapped", fmt.Errorf("query: %w", &pgconn.PgError{Code: "42P01"}), true},
		{"pg other code", &pgconn.PgError{Code: "42703", Message: `relation "x" does not exist`}, false},
		{"sqlite", errors.New("no such table: view_franchise_distribution"), true},
		{"text", errors.New(`ERROR: relation "view_franchise_distribution" does not exist`), true},
		{"column", errors.New("no such column: v.franchise_id"), false},
		{"connection", errors.New("dial tcp: connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsMissingRelation(tc.err))
		})
	}
}

func TestIsMissingFunction(t *testing.T) {
	assert.True(t, IsMissingFunction(&pgconn.PgError{Code: "42883"}))
	assert.True(t, IsMissingFunction(errors.New("no such function: register_lead_distribution")))
	assert.True(t, IsMissingFunction(errors.New("ERROR: function register_lead_distribution(uuid) does not exist")))
	assert.False(t, IsMissingFunction(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsMissingFunction(errors.New("timeout")))
	assert.False(t, IsMissingFunction(nil))
}

func TestTransportError(t *testing.T) {
	assert.NoError(t, transportError(nil))
	assert.Equal(t, gorm.ErrRecordNotFound, transportError(gorm.ErrRecordNotFound))

	wrapped := transportError(errors.New("boom"))
	assert.ErrorIs(t, wrapped, ErrTransport)
	assert.Same(t, wrapped, transportError(wrapped))
}

func TestWithViewFallback(t *testing.T) {
	const relation = "view_test_fallback"

	t.Run("primary succeeds", func(t *testing.T) {
		fallbacks := 0
		err := withViewFallback(nopLogger(), relation,
			func() error { return nil },
			func() error { fallbacks++; return nil },
		)
		require.NoError(t, err)
		assert.Zero(t, fallbacks)
	})

	t.Run("missing relation runs fallback once", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.ViewFallbacks.WithLabelValues(relation))
		primaries, fallbacks := 0, 0
		err := withViewFallback(nopLogger(), relation,
			func() error { primaries++; return errors.New("no such table: " + relation) },
			func() error { fallbacks++; return nil },
		)
		require.NoError(t, err)
		assert.Equal(t, 1, primaries)
		assert.Equal(t, 1, fallbacks)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.ViewFallbacks.WithLabelValues(relation)))
	})

	t.Run("other errors skip fallback", func(t *testing.T) {
		fallbacks := 0
		cause := errors.New("connection reset by peer")
		err := withViewFallback(nopLogger(), relation,
			func() error { return cause },
			func() error { fallbacks++; return nil },
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, cause)
		assert.Zero(t, fallbacks)
	})

	t.Run("fallback failure is a transport error", func(t *testing.T) {
		err := withViewFallback(nopLogger(), relation,
			func() error { return &pgconn.PgError{Code: "42P01"} },
			func() error { return errors.New("no such table: lead_distributions") },
		)
		assert.ErrorIs(t, err, ErrTransport)
	})
}

func TestWithProcedureFallback(t *testing.T) {
	const procedure = "proc_test_fallback"

	before := testutil.ToFloat64(metrics.ProcedureFallbacks.WithLabelValues(procedure))
	fallbacks := 0
	err := withProcedureFallback(nopLogger(), procedure,
		func() error { return &pgconn.PgError{Code: "42883"} },
		func() error { fallbacks++; return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 1, fallbacks)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ProcedureFallbacks.WithLabelValues(procedure)))

	fallbacks = 0
	err = withProcedureFallback(nopLogger(), procedure,
		func() error { return &pgconn.PgError{Code: "23505"} },
		func() error { fallbacks++; return nil },
	)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Zero(t, fallbacks)
}
