package pathutil

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when a path ID is not a UUID.
var ErrInvalidID = errors.New("invalid id")

// ParseSummaryID validates a summary ID taken from the path and returns it
// in canonical lowercase form.
func ParseSummaryID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
