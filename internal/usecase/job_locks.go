package usecase

import "sync"

// jobLocks serializes mutating operations per job id. Operations on two
// different jobs proceed concurrently; operations on the same job apply one
// at a time, in acquisition order.
type jobLocks struct {
	mu    sync.Mutex
	locks map[string]*jobLockEntry
}

type jobLockEntry struct {
	sync.Mutex
	refs int
}

func newJobLocks() *jobLocks {
	return &jobLocks{locks: map[string]*jobLockEntry{}}
}

// acquire blocks until the caller holds the job's exclusive lock and returns
// the release func. The entry is dropped once the last holder releases, so
// the registry stays bounded by the number of in-flight jobs.
func (l *jobLocks) acquire(jobID string) func() {
	l.mu.Lock()
	e, ok := l.locks[jobID]
	if !ok {
		e = &jobLockEntry{}
		l.locks[jobID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.Lock()
	return func() {
		e.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, jobID)
		}
		l.mu.Unlock()
	}
}
