package repository

import (
	"github.com/rs/zerolog"

	"usina-leads/internal/metrics"
)

// withViewFallback runs primary and, only when it failed because relation is
// missing, runs fallback once. Any other failure is returned as is.
func withViewFallback(log zerolog.Logger, relation string, primary, fallback func() error) error {
	err := primary()
	if err == nil {
		return nil
	}
	if !IsMissingRelation(err) {
		return transportError(err)
	}

	log.Warn().Err(err).Str("relation", relation).Msg("view unavailable, querying base tables")
	metrics.ViewFallbacks.WithLabelValues(relation).Inc()

	return transportError(fallback())
}

// withProcedureFallback is the write-side twin of withViewFallback for stored
// procedures.
func withProcedureFallback(log zerolog.Logger, procedure string, call, fallback func() error) error {
	err := call()
	if err == nil {
		return nil
	}
	if !IsMissingFunction(err) {
		return transportError(err)
	}

	log.Warn().Err(err).Str("procedure", procedure).Msg("procedure unavailable, writing tables directly")
	metrics.ProcedureFallbacks.WithLabelValues(procedure).Inc()

	return transportError(fallback())
}
