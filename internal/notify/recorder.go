package notify

import (
	"context"
	"sync"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

// Recorder keeps the most recent notifications so the view layer can render
// them as toasts.
type Recorder struct {
	mu    sync.Mutex
	limit int
	items []domain.Notification
}

func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Notify(_ context.Context, msg domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, msg)
	if r.limit > 0 && len(r.items) > r.limit {
		r.items = r.items[len(r.items)-r.limit:]
	}
	return nil
}

// Recent returns a copy of the kept notifications, oldest first.
func (r *Recorder) Recent() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Notification, len(r.items))
	copy(out, r.items)
	return out
}
