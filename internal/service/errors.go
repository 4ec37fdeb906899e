package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"usina-leads/internal/model"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// storeError turns a missing row into ErrNotFound and leaves everything else
// untouched.
func storeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func parseID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, invalid("%s must be a valid UUID", field)
	}
	return id, nil
}

func parseOptionalID(value *string, field string) (*uuid.UUID, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	id, err := parseID(*value, field)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func requireWriter(principal model.Principal) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}
	return nil
}

func requiredText(value *string, field string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", invalid("%s is required", field)
	}
	return strings.TrimSpace(*value), nil
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func statusOr(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return strings.ToLower(strings.TrimSpace(*value))
}
