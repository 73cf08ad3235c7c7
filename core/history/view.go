package history

import (
	"context"
	"sync"

	"github.com/goto/workforce/domain"
)

//go:generate mockery --name=timelineGetter --exported --with-expecter
type timelineGetter interface {
	GetTimeline(ctx context.Context, viewer domain.Viewer, key domain.HistoryKey) (*domain.Timeline, error)
}

// TimelineView shows the timeline of one selected request at a time. A key is fetched
// once; results arriving for a key that is no longer selected are dropped.
type TimelineView struct {
	getter timelineGetter

	mu       sync.Mutex
	key      domain.HistoryKey
	timeline *domain.Timeline
}

func NewTimelineView(g timelineGetter) *TimelineView {
	return &TimelineView{getter: g}
}

func (v *TimelineView) Load(ctx context.Context, viewer domain.Viewer, key domain.HistoryKey) (*domain.Timeline, error) {
	v.mu.Lock()
	if v.key == key && v.timeline != nil {
		t := v.timeline
		v.mu.Unlock()
		return t, nil
	}
	v.key = key
	v.timeline = nil
	v.mu.Unlock()

	t, err := v.getter.GetTimeline(ctx, viewer, key)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.key != key {
		return nil, ErrStaleTimeline
	}
	if err != nil {
		return nil, err
	}
	if t.Error == "" {
		v.timeline = t
	}
	return t, nil
}

// Current returns the loaded timeline of the selected key, nil while loading
func (v *TimelineView) Current() *domain.Timeline {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timeline
}
