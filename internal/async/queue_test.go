package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	fail map[uuid.UUID]bool
}

func (p *countingProcessor) ProcessByID(_ context.Context, documentID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, documentID)
	if p.fail[documentID] {
		return errors.New("boom")
	}
	return nil
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewPipelineQueue(proc, nil, WithWorkers(3), WithQueueSize(16))

	const n = 10
	for i := 0; i < n; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := proc.count(); got != n {
		t.Fatalf("processed %d jobs, want %d", got, n)
	}
}

func TestQueueContinuesAfterProcessorError(t *testing.T) {
	failing := uuid.New()
	ok := uuid.New()
	proc := &countingProcessor{fail: map[uuid.UUID]bool{failing: true}}
	q := NewPipelineQueue(proc, nil, WithWorkers(1))

	_ = q.Enqueue(context.Background(), Job{DocumentID: failing})
	_ = q.Enqueue(context.Background(), Job{DocumentID: ok})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := proc.count(); got != 2 {
		t.Fatalf("processed %d jobs, want 2", got)
	}
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewPipelineQueue(proc, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// must not panic on the closed channel
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	if got := proc.count(); got != 0 {
		t.Fatalf("processed %d jobs after shutdown, want 0", got)
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewPipelineQueue(&countingProcessor{}, nil, WithWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
