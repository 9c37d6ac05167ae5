package cache

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is the parent of every validation error returned by Put.
var ErrInvalidArgument = errors.New("cache: invalid argument")

var (
	// ErrInvalidTTL reports a ttl that is zero or negative.
	ErrInvalidTTL = fmt.Errorf("%w: timeout must be a positive duration", ErrInvalidArgument)
	// ErrInvalidCallback reports an expiry callback that cannot be invoked.
	ErrInvalidCallback = fmt.Errorf("%w: timeout callback must be a function", ErrInvalidArgument)
)

func invalidTTL(ttl time.Duration) error {
	return fmt.Errorf("%w: got %s", ErrInvalidTTL, ttl)
}
