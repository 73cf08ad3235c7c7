package inbox

import (
	"context"
	"sync"

	"github.com/goto/workforce/domain"
)

//go:generate mockery --name=lister --exported --with-expecter
type lister interface {
	List(ctx context.Context, viewer domain.Viewer, filter domain.InboxFilter) (*domain.Inbox, error)
}

// View holds the last published inbox of one viewer session. Every Refresh starts a new
// generation and cancels the one in flight; only the latest generation may publish.
type View struct {
	lister lister

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *domain.Inbox
}

func NewView(l lister) *View {
	return &View{lister: l}
}

// Refresh loads the inbox for viewer and filter. It returns ErrStaleRefresh when a newer
// Refresh started before this one finished; the older result is then discarded.
func (v *View) Refresh(ctx context.Context, viewer domain.Viewer, filter domain.InboxFilter) (*domain.Inbox, error) {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.mu.Unlock()

	defer cancel()
	inbox, err := v.lister.List(ctx, viewer, filter)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return nil, ErrStaleRefresh
	}
	v.cancel = nil
	if err != nil {
		return nil, err
	}
	v.current = inbox
	return inbox, nil
}

// Current returns the last published inbox, nil before the first successful refresh
func (v *View) Current() *domain.Inbox {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Close cancels the refresh in flight, if any
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}
