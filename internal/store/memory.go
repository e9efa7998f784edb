package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store implementation.
// Tasks live for the process lifetime only; nothing is persisted.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddTask implements Store.
func (s *MemoryStore) AddTask(ctx context.Context, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, Task{Description: description})
	return nil
}

// ListTasks implements Store.
func (s *MemoryStore) ListTasks(ctx context.Context) ([]string, error) {
	tasks, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return displayStrings(tasks), nil
}

// Snapshot implements Store. Callers get a copy of the task slice.
func (s *MemoryStore) Snapshot(ctx context.Context) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Task, len(s.tasks))
	copy(result, s.tasks)
	return result, nil
}

// MarkCompleted implements Store.
func (s *MemoryStore) MarkCompleted(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.tasks) {
		return nil
	}
	s.tasks[index].Completed = true
	return nil
}

// Close implements Store. Nothing is held, so it is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
