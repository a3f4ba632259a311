package service

import "sync"

// inFlight guards per-record operations so that a record never has two
// create or reveal flows running at once.
type inFlight struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newInFlight() *inFlight {
	return &inFlight{ids: make(map[string]struct{})}
}

// acquire marks id busy. It returns false when id is already busy;
// otherwise the returned func releases it.
func (f *inFlight) acquire(id string) (func(), bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.ids[id]; busy {
		return nil, false
	}
	f.ids[id] = struct{}{}

	return func() {
		f.mu.Lock()
		delete(f.ids, id)
		f.mu.Unlock()
	}, true
}

func (f *inFlight) busy(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.ids[id]
	return ok
}
