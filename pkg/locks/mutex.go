package locks

import (
	"context"
	"slices"
	"sync"
)

type waiter chan struct{}

// Mutex is a mutual exclusion lock whose Lock operation
// can be cancelled by a context. Waiting goroutines acquire
// the lock in the order they started waiting.
type Mutex struct {
	lock    sync.Mutex
	locked  bool
	waiting []waiter
}

func (m *Mutex) IsLocked() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.locked
}

func (m *Mutex) HasWaiting() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.waiting) > 0
}

// Waiting returns the number of waiting goroutines.
func (m *Mutex) Waiting() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.waiting)
}

func (m *Mutex) TryLock() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.locked {
		return false
	}
	m.locked = true
	return true
}

// Unlock passes the lock to the first waiting goroutine
// or releases it.
func (m *Mutex) Unlock() {
	m.lock.Lock()
	defer m.lock.Unlock()

	if !m.locked {
		panic("unlocking unlocked mutex")
	}
	if len(m.waiting) > 0 {
		close(m.waiting[0])
		m.waiting = m.waiting[1:]
	} else {
		m.locked = false
	}
}

// Lock acquires the lock. If the context is done before,
// the context error is returned and the lock is not held.
func (m *Mutex) Lock(ctx context.Context) error {
	m.lock.Lock()
	if !m.locked {
		m.locked = true
		m.lock.Unlock()
		return nil
	}

	w := make(waiter)
	m.waiting = append(m.waiting, w)
	m.lock.Unlock()

	if ctx == nil {
		<-w
		return nil
	}
	select {
	case <-w:
		return nil
	case <-ctx.Done():
		m.lock.Lock()
		for i, o := range m.waiting {
			if o == w {
				m.waiting = slices.Delete(m.waiting, i, i+1)
				m.lock.Unlock()
				return ctx.Err()
			}
		}
		m.lock.Unlock()
		// the lock has been passed meanwhile
		m.Unlock()
		return ctx.Err()
	}
}
