package cache

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/samber/mo"
)

// record is the unit stored under a key. Fields are guarded by Store.mu.
type record struct {
	value    any
	expireAt mo.Option[time.Time]
	timer    *clock.Timer
	onExpire ExpireFunc

	// cancelled is set once the timer no longer owns the record: it was
	// stopped by a replace, delete or clear, or it already fired.
	cancelled bool
}

// expired reports whether the deadline lies strictly before now.
// A record without a deadline never expires.
func (r *record) expired(now time.Time) bool {
	deadline, ok := r.expireAt.Get()
	return ok && deadline.Before(now)
}

func (r *record) cancel() {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.cancelled = true
}
