package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrTransport marks failures talking to the data store: unreachable server,
// protocol errors or malformed queries. Missing rows are never reported with it.
var ErrTransport = errors.New("data store failure")

const (
	pgUndefinedTable    = "42P01"
	pgUndefinedFunction = "42883"
)

// IsMissingRelation reports whether err says a table or view does not exist.
func IsMissingRelation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such table") {
		return true
	}
	return strings.Contains(msg, "relation \"") && strings.Contains(msg, "does not exist")
}

// IsMissingFunction reports whether err says a stored procedure does not exist.
func IsMissingFunction(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedFunction
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such function") {
		return true
	}
	return strings.Contains(msg, "function ") && strings.Contains(msg, "does not exist")
}

func transportError(err error) error {
	if err == nil || errors.Is(err, ErrTransport) || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
