package mainloop

import "testing"

type queueThread struct {
	queue   []func()
	refused bool
}

func (q *queueThread) InvokeRequired() bool { return true }

func (q *queueThread) Post(fn func()) bool {
	if q.refused {
		return false
	}
	q.queue = append(q.queue, fn)
	return true
}

func TestCoalescerMergesBurstIntoSingleTask(t *testing.T) {
	q := &queueThread{}
	c := NewCoalescer(q)

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("popup-title", func() { value = v })
	}

	if len(q.queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(q.queue))
	}
	if c.Pending() != 1 {
		t.Fatalf("expected 1 pending key, got %d", c.Pending())
	}
	q.queue[0]()

	if value != 5 {
		t.Fatalf("expected latest callback to run, got %d", value)
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no pending keys after run, got %d", c.Pending())
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	q := &queueThread{}
	c := NewCoalescer(q)

	ran := false
	c.Post("popup-title", func() { ran = true })
	c.Destroy()

	if len(q.queue) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(q.queue))
	}
	q.queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	if c.Post("popup-title", func() { ran = true }) {
		t.Fatalf("expected post after destroy to be refused")
	}
	if len(q.queue) != 1 {
		t.Fatalf("expected no new callback after destroy, got %d", len(q.queue))
	}
}

func TestCoalescerForgetsKeyWhenLoopRefuses(t *testing.T) {
	q := &queueThread{refused: true}
	c := NewCoalescer(q)

	if c.Post("popup-title", func() {}) {
		t.Fatalf("expected post to fail when loop refuses work")
	}
	if c.Pending() != 0 {
		t.Fatalf("expected key to be forgotten, got %d pending", c.Pending())
	}
}

func TestNewCoalescerPanicsOnNilThread(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when ui is nil")
		}
	}()

	_ = NewCoalescer(nil)
}
