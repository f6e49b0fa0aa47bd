package service

import (
	"context"
	"sync"
)

// UserLocker serializes read-modify-write work per user. Locks are not
// reentrant: a goroutine holding a user's lock must not request it again.
type UserLocker interface {
	Lock(ctx context.Context, userID string) (unlock func(), err error)
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

type userLockerHandler struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

func NewUserLocker() UserLocker {
	return &userLockerHandler{
		locks: map[string]*userLock{},
	}
}

func (h *userLockerHandler) Lock(ctx context.Context, userID string) (func(), error) {
	return h.lock(userID), nil
}

func (h *userLockerHandler) lock(userID string) func() {
	h.mu.Lock()
	l, ok := h.locks[userID]
	if !ok {
		l = &userLock{}
		h.locks[userID] = l
	}
	l.refs++
	h.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			h.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(h.locks, userID)
			}
			h.mu.Unlock()
		})
	}
}

func (h *userLockerHandler) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.locks)
}
