package loop

import (
	"sort"
	"time"
)

// Manual is a Scheduler that only runs tasks when told to. Tasks run in
// order of due time, then submission order.
type Manual struct {
	now   time.Duration
	seq   int
	queue []*manualTask
}

type manualTask struct {
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual { return &Manual{} }

// Dispatch queues fn with no delay.
func (m *Manual) Dispatch(fn func()) bool {
	m.AfterFunc(0, fn)
	return true
}

// AfterFunc queues fn to run d after the current virtual time.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTask{due: m.now + d, seq: m.seq, fn: fn}
	m.queue = append(m.queue, t)
	return t
}

// Pending returns the number of tasks that have not run or been stopped.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.queue {
		if !t.stopped {
			n++
		}
	}
	return n
}

// RunPending runs queued tasks, including tasks queued while running, until
// the queue is empty. Virtual time advances to each task's due time. It
// returns the number of tasks run.
func (m *Manual) RunPending() int {
	ran := 0
	for len(m.queue) > 0 {
		sort.SliceStable(m.queue, func(i, j int) bool {
			if m.queue[i].due != m.queue[j].due {
				return m.queue[i].due < m.queue[j].due
			}
			return m.queue[i].seq < m.queue[j].seq
		})
		t := m.queue[0]
		m.queue = m.queue[1:]
		if t.stopped {
			continue
		}
		t.stopped = true
		if t.due > m.now {
			m.now = t.due
		}
		t.fn()
		ran++
	}
	return ran
}
