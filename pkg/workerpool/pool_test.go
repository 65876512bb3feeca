package workerpool_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/shashiranjanraj/fruitfuel/pkg/workerpool"
)

func TestPool_RunsEveryTask(t *testing.T) {
	pool := workerpool.New(4)

	const n = 100
	var count atomic.Int64
	for range n {
		if err := pool.Submit(func() error {
			count.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if got := count.Load(); got != n {
		t.Errorf("expected %d tasks to run, got %d", n, got)
	}
}

func TestPool_JoinsErrors(t *testing.T) {
	pool := workerpool.New(2)
	errA := errors.New("a")
	errB := errors.New("b")

	_ = pool.Submit(func() error { return errA })
	_ = pool.Submit(func() error { return nil })
	_ = pool.Submit(func() error { return errB })

	err := pool.Wait()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected both errors, got %v", err)
	}
}

func TestPool_PanicBecomesError(t *testing.T) {
	pool := workerpool.New(1)
	_ = pool.Submit(func() error { panic("boom") })

	if err := pool.Wait(); err == nil {
		t.Fatal("expected panic to surface as an error")
	}
}

func TestPool_SubmitAfterWait(t *testing.T) {
	pool := workerpool.New(1)
	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if err := pool.Submit(func() error { return nil }); !errors.Is(err, workerpool.ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
	if err := pool.Wait(); err != nil {
		t.Errorf("second Wait: %v", err)
	}
}

func TestPool_SizeBelowOne(t *testing.T) {
	pool := workerpool.New(0)
	ran := false
	_ = pool.Submit(func() error { ran = true; return nil })
	_ = pool.Wait()
	if !ran {
		t.Error("task did not run")
	}
}
