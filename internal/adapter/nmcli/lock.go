package nmcli

import (
	"context"
	"sync"
)

// profileLocks hands out one exclusive lock per profile name.
// Entries are reference counted and dropped once nobody holds or waits for them.
type profileLocks struct {
	mu      sync.Mutex
	entries map[string]*profileLock
}

type profileLock struct {
	held chan struct{}
	refs int
}

func newProfileLocks() *profileLocks {
	return &profileLocks{entries: make(map[string]*profileLock)}
}

// lock blocks until the profile is free or ctx is done. The returned func releases it.
func (l *profileLocks) lock(ctx context.Context, profile string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.entries[profile]
	if !ok {
		entry = &profileLock{held: make(chan struct{}, 1)}
		l.entries[profile] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.held <- struct{}{}:
	case <-ctx.Done():
		l.release(profile, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.held
			l.release(profile, entry)
		})
	}, nil
}

func (l *profileLocks) release(profile string, entry *profileLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, profile)
	}
}
