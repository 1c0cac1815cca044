package usecases

import (
	"context"
	"sync"
)

// RoomLocker serialises booking transactions per room. The returned
// unlock func must be called exactly once.
type RoomLocker interface {
	Lock(ctx context.Context, roomNumber int) (unlock func(), err error)
}

// MemoryLocker is a process-local RoomLocker.
type MemoryLocker struct {
	mu    sync.Mutex
	rooms map[int]chan struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{rooms: make(map[int]chan struct{})}
}

func (l *MemoryLocker) slot(roomNumber int) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.rooms[roomNumber]
	if !ok {
		ch = make(chan struct{}, 1)
		l.rooms[roomNumber] = ch
	}
	return ch
}

func (l *MemoryLocker) Lock(ctx context.Context, roomNumber int) (func(), error) {
	ch := l.slot(roomNumber)
	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	var once sync.Once
	return func() { once.Do(func() { <-ch }) }, nil
}
