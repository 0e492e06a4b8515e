package validation

import (
	"fmt"
	"strconv"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
)

// ErrInvalidID is returned for identifiers that are not positive integers.
var ErrInvalidID = apperrors.ErrInvalidID

// ParseID parses a positive integer identifier from a path segment or header.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// ValidateID checks that raw is a positive integer identifier.
func ValidateID(raw string) error {
	_, err := ParseID(raw)
	return err
}
