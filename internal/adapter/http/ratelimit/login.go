package ratelimit

import (
	"sync"
	"time"
)

type attemptRecord struct {
	Count        int
	LastAttempt  time.Time
	BlockedUntil time.Time
}

// LoginRateLimiter blocks a client for blockDuration once it exceeds
// maxAttempts within windowDuration.
type LoginRateLimiter struct {
	mu             sync.RWMutex
	attempts       map[string]*attemptRecord
	maxAttempts    int
	windowDuration time.Duration
	blockDuration  time.Duration
	stop           chan struct{}
	stopOnce       sync.Once
	now            func() time.Time
}

func NewLoginRateLimiter(maxAttempts int, windowDuration, blockDuration time.Duration) *LoginRateLimiter {
	limiter := &LoginRateLimiter{
		attempts:       make(map[string]*attemptRecord),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		blockDuration:  blockDuration,
		stop:           make(chan struct{}),
		now:            time.Now,
	}

	go limiter.cleanupLoop(time.Minute)

	return limiter
}

// Check records an attempt and reports whether it is allowed. When blocked the
// remaining block time is returned.
func (r *LoginRateLimiter) Check(clientID string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	record, exists := r.attempts[clientID]
	if !exists {
		record = &attemptRecord{LastAttempt: now}
		r.attempts[clientID] = record
	}

	if now.Before(record.BlockedUntil) {
		return false, record.BlockedUntil.Sub(now)
	}

	if now.Sub(record.LastAttempt) > r.windowDuration {
		record.Count = 0
	}

	record.Count++
	record.LastAttempt = now

	if record.Count > r.maxAttempts {
		record.BlockedUntil = now.Add(r.blockDuration)
		return false, r.blockDuration
	}

	return true, 0
}

// Remaining is the number of attempts left in the current window.
func (r *LoginRateLimiter) Remaining(clientID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.attempts[clientID]
	if !ok || r.now().Sub(record.LastAttempt) > r.windowDuration {
		return r.maxAttempts
	}
	if left := r.maxAttempts - record.Count; left > 0 {
		return left
	}
	return 0
}

func (r *LoginRateLimiter) Reset(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attempts, clientID)
}

// Stop ends the background cleanup.
func (r *LoginRateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *LoginRateLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.sweep(r.now())
		}
	}
}

func (r *LoginRateLimiter) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for clientID, record := range r.attempts {
		if now.Sub(record.LastAttempt) > r.windowDuration*2 && now.After(record.BlockedUntil) {
			delete(r.attempts, clientID)
		}
	}
}

// FailureTracker counts consecutive failed logins per client so the handler can
// apply a growing delay.
type FailureTracker struct {
	mu       sync.Mutex
	failures map[string]int
}

func NewFailureTracker() *FailureTracker {
	return &FailureTracker{failures: make(map[string]int)}
}

func (t *FailureTracker) Failures(clientID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failures[clientID]
}

func (t *FailureTracker) RecordFailure(clientID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[clientID]++
	return t.failures[clientID]
}

func (t *FailureTracker) RecordSuccess(clientID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.failures, clientID)
}
