package service

import (
	"errors"
	"fmt"
)

// withKind tags err with a taxonomy sentinel unless it already carries it.
func withKind(err, kind error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
