package usecase

import "sync"

// parentLock serializes budget-consuming writes per parent id so the
// read-siblings/check/insert sequence cannot interleave for the same
// ceiling. Locks are never evicted; the key space is bounded by the
// number of live parents in one process.
type parentLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newParentLock() *parentLock {
	return &parentLock{locks: make(map[string]*sync.Mutex)}
}

func (p *parentLock) Lock(parentID string) func() {
	p.mu.Lock()
	m, ok := p.locks[parentID]
	if !ok {
		m = &sync.Mutex{}
		p.locks[parentID] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m.Unlock
}
