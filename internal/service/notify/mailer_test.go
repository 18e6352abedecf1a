package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordingSender struct {
	mu    sync.Mutex
	sent  []string
	err   error
	calls chan struct{}
}

func newRecordingSender(err error) *recordingSender {
	return &recordingSender{err: err, calls: make(chan struct{}, 16)}
}

func (s *recordingSender) Send(to, subject, body string) error {
	s.mu.Lock()
	s.sent = append(s.sent, to)
	s.mu.Unlock()
	s.calls <- struct{}{}
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func waitForCalls(t *testing.T, s *recordingSender, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func TestMailerDeliversQueuedJobs(t *testing.T) {
	sender := newRecordingSender(nil)
	m := NewMailer(sender, zap.NewNop(), 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	m.Enqueue(Job{To: "sales@voltride.in", Subject: "New enquiry"})
	m.Enqueue(Job{To: "asha@example.com", Subject: "Thanks"})

	waitForCalls(t, sender, 2)
	if sender.count() != 2 {
		t.Fatalf("expected 2 deliveries, got %d", sender.count())
	}
}

func TestMailerSwallowsSendFailures(t *testing.T) {
	sender := newRecordingSender(errors.New("smtp unreachable"))
	m := NewMailer(sender, zap.NewNop(), 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	// Must not panic or block the enqueuer.
	m.Enqueue(Job{To: "sales@voltride.in", Subject: "New enquiry"})
	waitForCalls(t, sender, 1)
}

func TestMailerDropsWhenQueueFull(t *testing.T) {
	sender := newRecordingSender(nil)
	m := NewMailer(sender, zap.NewNop(), 1)

	// No worker running: second enqueue must drop, not block.
	done := make(chan struct{})
	go func() {
		m.Enqueue(Job{To: "a@example.com"})
		m.Enqueue(Job{To: "b@example.com"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
}

func TestMailerDrainsOnShutdown(t *testing.T) {
	sender := newRecordingSender(nil)
	m := NewMailer(sender, zap.NewNop(), 8)

	m.Enqueue(Job{To: "a@example.com"})
	m.Enqueue(Job{To: "b@example.com"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Run(ctx) // returns after draining

	if sender.count() != 2 {
		t.Fatalf("expected drain to deliver 2 queued jobs, got %d", sender.count())
	}
}
