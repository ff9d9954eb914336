package service

import (
	"context"
	"sync"
	"time"
)

type clientSessionJob struct {
	accounts ClientAccountService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that probes the accounts
// endpoint on a ticker. A probe that hits an expired token routes through the
// normal invalid-token recovery, so the session is re-established in the
// background instead of on the next user-initiated call. The job is idle
// until Start is called.
func NewClientSessionJob(accounts ClientAccountService) ClientSessionJob {
	return &clientSessionJob{accounts: accounts}
}

// Start implements [ClientSessionJob]. It stops any previously running job,
// then launches a background goroutine that probes every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientSessionJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.accounts.Accounts(jobCtx)
			}
		}
	}()
}

// Stop implements [ClientSessionJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
