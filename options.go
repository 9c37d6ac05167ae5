package cache

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Option mutates Config when constructing a store.
type Option func(Config) Config

// WithClock overrides the time source and timer facility, e.g. a clock.Mock in tests.
func WithClock(clk clock.Clock) Option {
	return func(cfg Config) Config {
		cfg.Clock = clk
		return cfg
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg Config) Config {
		cfg.Logger = &logger
		return cfg
	}
}

// WithObserver attaches an observer to receive operation events.
func WithObserver(o Observer) Option {
	return func(cfg Config) Config {
		cfg.Observer = o
		return cfg
	}
}

// WithDebug starts the store with debug logging enabled or disabled.
func WithDebug(enable bool) Option {
	return func(cfg Config) Config {
		cfg.Debug = enable
		return cfg
	}
}

// ExpireFunc is called with the key and value of an entry whose ttl elapsed.
type ExpireFunc func(key string, value any)

type putOptions struct {
	ttl      mo.Option[time.Duration]
	onExpire mo.Option[ExpireFunc]
}

// PutOption customizes a single Put call.
type PutOption func(putOptions) putOptions

// WithTTL expires the entry ttl after it is written. ttl must be positive.
func WithTTL(ttl time.Duration) PutOption {
	return func(o putOptions) putOptions {
		o.ttl = mo.Some(ttl)
		return o
	}
}

// OnExpire registers fn to run when the entry's ttl elapses. It is only
// meaningful together with WithTTL, and fn must not be nil.
func OnExpire(fn ExpireFunc) PutOption {
	return func(o putOptions) putOptions {
		o.onExpire = mo.Some(fn)
		return o
	}
}

func resolvePutOptions(opts []PutOption) putOptions {
	var o putOptions
	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}
	return o
}

func (o putOptions) validate() error {
	if ttl, ok := o.ttl.Get(); ok && ttl <= 0 {
		return invalidTTL(ttl)
	}
	if fn, ok := o.onExpire.Get(); ok && fn == nil {
		return ErrInvalidCallback
	}
	return nil
}
