package inbox

import (
	"context"
	"sync"
	"time"

	"github.com/goto/workforce/pkg/log"
)

type PollerState string

const (
	PollerStateIdle      PollerState = "idle"
	PollerStatePolling   PollerState = "polling"
	PollerStateSuspended PollerState = "suspended"
)

// Poller calls fn immediately and then on every interval while polling.
// Suspend pauses the ticks (e.g. the console is hidden); Resume polls at once and continues.
type Poller struct {
	interval time.Duration
	fn       func(context.Context) error
	logger   log.Logger

	mu      sync.Mutex
	state   PollerState
	resumed chan struct{}
}

func NewPoller(interval time.Duration, fn func(context.Context) error, logger log.Logger) *Poller {
	return &Poller{
		interval: interval,
		fn:       fn,
		logger:   logger,
		state:    PollerStateIdle,
		resumed:  make(chan struct{}, 1),
	}
}

func (p *Poller) State() PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run blocks until ctx is done, then returns to idle and reports ctx.Err()
func (p *Poller) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.state != PollerStateIdle {
		p.mu.Unlock()
		return ErrPollerRunning
	}
	p.state = PollerStatePolling
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.state = PollerStateIdle
		p.mu.Unlock()
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.resumed:
			p.poll(ctx)
		case <-ticker.C:
			if p.State() == PollerStateSuspended {
				continue
			}
			p.poll(ctx)
		}
	}
}

func (p *Poller) Suspend() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PollerStatePolling {
		p.state = PollerStateSuspended
	}
}

func (p *Poller) Resume() {
	p.mu.Lock()
	if p.state != PollerStateSuspended {
		p.mu.Unlock()
		return
	}
	p.state = PollerStatePolling
	p.mu.Unlock()

	select {
	case p.resumed <- struct{}{}:
	default:
	}
}

func (p *Poller) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.fn(ctx); err != nil && ctx.Err() == nil {
		p.logger.Warn(ctx, "poll failed", "error", err)
	}
}
