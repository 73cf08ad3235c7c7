package inbox_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goto/workforce/core/inbox"
	"github.com/goto/workforce/pkg/log"
	"github.com/stretchr/testify/assert"
)

func TestPoller(t *testing.T) {
	t.Run("polls immediately and on every tick", func(t *testing.T) {
		var calls int32
		p := inbox.NewPoller(10*time.Millisecond, func(context.Context) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}, log.NewNoop())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error)
		go func() { done <- p.Run(ctx) }()

		assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, inbox.PollerStatePolling, p.State())

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
		assert.Equal(t, inbox.PollerStateIdle, p.State())
	})

	t.Run("keeps polling after a failed poll", func(t *testing.T) {
		var calls int32
		p := inbox.NewPoller(5*time.Millisecond, func(context.Context) error {
			atomic.AddInt32(&calls, 1)
			return errors.New("backend down")
		}, log.NewNoop())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go p.Run(ctx)

		assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, time.Second, 5*time.Millisecond)
	})

	t.Run("suspend pauses ticks and resume polls at once", func(t *testing.T) {
		var calls int32
		p := inbox.NewPoller(time.Hour, func(context.Context) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}, log.NewNoop())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go p.Run(ctx)

		assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)

		p.Suspend()
		assert.Equal(t, inbox.PollerStateSuspended, p.State())

		p.Resume()
		assert.Equal(t, inbox.PollerStatePolling, p.State())
		assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 2 }, time.Second, 5*time.Millisecond)
	})

	t.Run("resume without suspend is a no-op", func(t *testing.T) {
		p := inbox.NewPoller(time.Hour, func(context.Context) error { return nil }, log.NewNoop())

		p.Resume()
		p.Suspend()

		assert.Equal(t, inbox.PollerStateIdle, p.State())
	})

	t.Run("rejects a second run", func(t *testing.T) {
		p := inbox.NewPoller(time.Hour, func(context.Context) error { return nil }, log.NewNoop())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go p.Run(ctx)
		assert.Eventually(t, func() bool { return p.State() == inbox.PollerStatePolling }, time.Second, 5*time.Millisecond)

		assert.ErrorIs(t, p.Run(ctx), inbox.ErrPollerRunning)
	})
}
