package queue_test

import (
	"sync"
	"testing"
	"time"

	"github.com/andrew-torda/protcorr/pkg/queue"
)

func TestFIFOOrderSingleProducer(t *testing.T) {
	q := queue.New[int](4)
	go func() {
		for i := 0; i < 10; i++ {
			q.Enqueue(i)
		}
		q.SetShutdown()
	}()

	var got []int
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != 10 {
		t.Fatalf("got %d items, want 10", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("item %d = %d, want %d (order not preserved)", i, v, i)
		}
	}
}

func TestEnqueueBlocksWhenFull(t *testing.T) {
	q := queue.New[int](2)
	q.Enqueue(1)
	q.Enqueue(2)

	done := make(chan struct{})
	go func() {
		q.Enqueue(3)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Enqueue returned before the queue had room")
	case <-time.After(50 * time.Millisecond):
	}

	if _, ok := q.Dequeue(); !ok {
		t.Fatal("expected a value")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue never unblocked after Dequeue freed a slot")
	}
}

func TestShutdownDrainsThenReportsEmpty(t *testing.T) {
	q := queue.New[int](8)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	q.SetShutdown()

	for _, want := range []int{1, 2, 3} {
		v, ok := q.Dequeue()
		if !ok || v != want {
			t.Fatalf("Dequeue() = (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue should report no more items once drained after shutdown")
	}
}

func TestEnqueueAfterShutdownIsNoOp(t *testing.T) {
	q := queue.New[int](4)
	q.SetShutdown()
	q.Enqueue(42)
	if !q.IsEmpty() {
		t.Fatal("Enqueue after shutdown should be a silent no-op")
	}
}

func TestDequeueUnblocksOnShutdownWhenEmpty(t *testing.T) {
	q := queue.New[int](4)
	var wg sync.WaitGroup
	wg.Add(1)
	var ok bool
	go func() {
		defer wg.Done()
		_, ok = q.Dequeue()
	}()

	time.Sleep(20 * time.Millisecond)
	q.SetShutdown()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dequeue never woke up on shutdown")
	}
	if ok {
		t.Fatal("Dequeue on an empty, shut-down queue should report ok=false")
	}
}
