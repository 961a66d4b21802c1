package invocation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// generation is the latest token handed out for a container
type generation struct {
	Token      string
	Expiration time.Time
}

// Tracker is a thread-safe registry of the latest decoration token per
// container. Entries expire after ttl so abandoned containers do not pile up.
type Tracker struct {
	data  map[string]generation
	ttl   time.Duration
	mutex sync.RWMutex
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewTracker creates a tracker and starts its janitor goroutine
func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	t := &Tracker{
		data: make(map[string]generation),
		ttl:  ttl,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go t.cleanupExpired(ttl)

	return t
}

// Begin records a new generation for the container and returns its token.
// Any earlier token for the same container stops being current.
func (t *Tracker) Begin(containerID string) string {
	token := uuid.NewString()
	if containerID == "" {
		return token
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.data[containerID] = generation{
		Token:      token,
		Expiration: time.Now().Add(t.ttl),
	}
	return token
}

// IsCurrent reports whether token is still the latest for the container.
// Untracked containers (empty ID) are always current.
func (t *Tracker) IsCurrent(containerID, token string) bool {
	if containerID == "" {
		return true
	}

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	gen, exists := t.data[containerID]
	if !exists {
		return false
	}
	return gen.Token == token
}

// Finish drops the container entry if token is still the latest
func (t *Tracker) Finish(containerID, token string) {
	if containerID == "" {
		return
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if gen, exists := t.data[containerID]; exists && gen.Token == token {
		delete(t.data, containerID)
	}
}

// Size returns the number of tracked containers
func (t *Tracker) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.data)
}

// Close stops the janitor goroutine
func (t *Tracker) Close() {
	t.once.Do(func() {
		close(t.stop)
		<-t.done
	})
}

// cleanupExpired removes expired generations periodically
func (t *Tracker) cleanupExpired(interval time.Duration) {
	defer close(t.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.removeExpired(time.Now())
		}
	}
}

func (t *Tracker) removeExpired(now time.Time) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for key, gen := range t.data {
		if now.After(gen.Expiration) {
			delete(t.data, key)
		}
	}
}
