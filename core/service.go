// Package core implements the workforce rules: sessions, tasks, absences,
// attendance, inventory, orders, reports and shifts. It is transport-free;
// handlers call into it and the store holds the data.
package core

import (
	"time"

	"WorkforceBackend/notify"
	"WorkforceBackend/store"
)

// Dashboard notices auto-expire client-side; the service reports how long
// each kind should stay visible.
const (
	ClockNoticeTTL    = 5 * time.Second
	ShortageNoticeTTL = 6 * time.Second
)

// Options carries the deployment knobs the service needs.
type Options struct {
	// NewUserSecurityView grants the security screen to newly created
	// employees even though the role default denies it.
	NewUserSecurityView bool
	// NoticeRecipient is the address shortage and attendance notices go to.
	NoticeRecipient string
}

type Service struct {
	store    *store.Store
	clock    Clock
	composer notify.Composer
	opts     Options
}

func New(st *store.Store, clock Clock, composer notify.Composer, opts Options) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{store: st, clock: clock, composer: composer, opts: opts}
}
