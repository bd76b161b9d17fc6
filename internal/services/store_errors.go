package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

// storeError logs the backing store failure and returns a sanitized error that
// carries only the operation name.
func storeError(log *logger.Logger, metrics *observability.Metrics, op string, err error, kv ...interface{}) error {
	metrics.IncStoreError(op)
	if log != nil {
		log.Error("store call failed", append([]interface{}{"op", op, "error", err}, kv...)...)
	}
	return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, op)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "duplicate key")
}
