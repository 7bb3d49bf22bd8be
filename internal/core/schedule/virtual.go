package schedule

import (
	"container/heap"
	"sync"
	"time"
)

// Virtual is a simulated clock. Time only moves when Advance is called, and
// callbacks run on the goroutine that advances it.
type Virtual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// NewVirtual creates a simulated clock starting at zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Now returns the elapsed simulated time.
func (clock *Virtual) Now() time.Duration {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Len returns the number of pending callbacks.
func (clock *Virtual) Len() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	count := 0
	for _, item := range clock.queue {
		if !item.cancelled {
			count++
		}
	}
	return count
}

// After schedules fn at Now()+delay.
func (clock *Virtual) After(delay time.Duration, fn func()) Handle {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.seq++
	item := &task{
		clock: clock,
		due:   clock.now + Clamp(delay),
		seq:   clock.seq,
		fn:    fn,
	}
	heap.Push(&clock.queue, item)
	return item
}

// Advance moves the clock forward by delta, running every callback that
// becomes due, including ones scheduled by callbacks during the advance.
func (clock *Virtual) Advance(delta time.Duration) {
	clock.mu.Lock()
	target := clock.now + Clamp(delta)
	clock.mu.Unlock()

	for {
		item, ok := clock.popDue(target)
		if !ok {
			break
		}
		item.fn()
	}

	clock.mu.Lock()
	if clock.now < target {
		clock.now = target
	}
	clock.mu.Unlock()
}

// RunPending runs callbacks that are already due without moving the clock.
func (clock *Virtual) RunPending() {
	clock.Advance(0)
}

func (clock *Virtual) popDue(target time.Duration) (*task, bool) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for clock.queue.Len() > 0 {
		next := clock.queue[0]
		if next.due > target {
			return nil, false
		}
		heap.Pop(&clock.queue)
		if next.cancelled {
			continue
		}
		next.fired = true
		if next.due > clock.now {
			clock.now = next.due
		}
		return next, true
	}
	return nil, false
}

type task struct {
	clock     *Virtual
	due       time.Duration
	seq       uint64
	fn        func()
	index     int
	fired     bool
	cancelled bool
}

func (item *task) Cancel() bool {
	item.clock.mu.Lock()
	defer item.clock.mu.Unlock()
	if item.fired || item.cancelled {
		return false
	}
	item.cancelled = true
	return true
}

type taskQueue []*task

func (queue taskQueue) Len() int { return len(queue) }

func (queue taskQueue) Less(i, j int) bool {
	if queue[i].due == queue[j].due {
		return queue[i].seq < queue[j].seq
	}
	return queue[i].due < queue[j].due
}

func (queue taskQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].index = i
	queue[j].index = j
}

func (queue *taskQueue) Push(value any) {
	item := value.(*task)
	item.index = len(*queue)
	*queue = append(*queue, item)
}

func (queue *taskQueue) Pop() any {
	old := *queue
	last := len(old) - 1
	item := old[last]
	old[last] = nil
	item.index = -1
	*queue = old[:last]
	return item
}
