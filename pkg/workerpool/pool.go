// Package workerpool runs error-returning tasks on a fixed number of goroutines.
//
//	pool := workerpool.New(4)
//	for _, path := range paths {
//	    pool.Submit(func() error { return replay(path) })
//	}
//	if err := pool.Wait(); err != nil { … }
//
// Submit blocks while every worker is busy and the queue is full, so a
// caller can never start more work than the pool can hold.
package workerpool

import (
	"errors"
	"fmt"
	"sync"
)

// ErrPoolClosed is returned by Submit after Wait has been called.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// Pool is a bounded goroutine pool.
type Pool struct {
	tasks chan func() error
	wg    sync.WaitGroup

	submitMu sync.Mutex
	closed   bool
	once     sync.Once

	errMu sync.Mutex
	errs  []error
}

// New creates a Pool with size workers. A size below one is treated as one.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{tasks: make(chan func() error, size)}
	for range size {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit queues task, blocking until there is room.
func (p *Pool) Submit(task func() error) error {
	p.submitMu.Lock()
	defer p.submitMu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.tasks <- task
	return nil
}

// Wait stops accepting tasks, waits for the queued ones to finish and
// returns their errors joined. Safe to call more than once.
func (p *Pool) Wait() error {
	p.once.Do(func() {
		p.submitMu.Lock()
		p.closed = true
		close(p.tasks)
		p.submitMu.Unlock()
		p.wg.Wait()
	})

	p.errMu.Lock()
	defer p.errMu.Unlock()
	return errors.Join(p.errs...)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		if err := safeRun(task); err != nil {
			p.errMu.Lock()
			p.errs = append(p.errs, err)
			p.errMu.Unlock()
		}
	}
}

// safeRun turns a panicking task into an error.
func safeRun(task func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("workerpool: task panicked: %v", r)
		}
	}()
	return task()
}
