package citemark

import (
	"errors"
	"fmt"
)

// ErrFormattingOpen is returned by [RichText.Open] when the requested
// formatting kind already has a pending span. It signals a contract
// violation in the calling formatter, not a user-triggerable condition.
var ErrFormattingOpen = errors.New("citemark: formatting kind already open")

// KeyNotFoundError reports a citation key that is not present in the
// citation database.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s could not be found in the citation database", e.Key)
}

// NoNumberError reports a citation that lacks an assigned number although
// the requested citation format requires one.
type NoNumberError struct {
	Key string
}

func (e *NoNumberError) Error() string {
	return fmt.Sprintf("key %s did not contain a number", e.Key)
}
