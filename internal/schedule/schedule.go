// Package schedule runs delayed callbacks through handles that the owner can
// cancel when it is torn down.
package schedule

import (
	"sort"
	"sync"
	"time"
)

type Handle interface {
	// Cancel stops the callback from running. It reports false when the
	// callback already ran or was cancelled before.
	Cancel() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
}

type realScheduler struct{}

// Real schedules on the runtime timer. Callbacks run on their own goroutine.
func Real() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Handle {
	return timerHandle{t: time.AfterFunc(d, f)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.t.Stop()
}

// Manual is a Scheduler driven by Advance. Callbacks run synchronously on the
// goroutine calling Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m     *Manual
	due   time.Duration
	seq   int
	f     func()
	state int // 0 pending, 1 ran, 2 cancelled
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	task := &manualTask{m: m, due: m.now + d, seq: m.seq, f: f}
	m.tasks = append(m.tasks, task)
	return task
}

// Advance moves the clock forward by d and runs every callback that became due, in due order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualTask
	pending := m.tasks[:0]
	for _, task := range m.tasks {
		switch {
		case task.state != 0:
		case task.due <= m.now:
			task.state = 1
			due = append(due, task)
		default:
			pending = append(pending, task)
		}
	}
	m.tasks = pending
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, task := range due {
		task.f()
	}
}

// Pending reports how many callbacks are scheduled and not yet run or cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, task := range m.tasks {
		if task.state == 0 {
			n++
		}
	}
	return n
}

func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	if t.state != 0 {
		return false
	}
	t.state = 2
	return true
}
