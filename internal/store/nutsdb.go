package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/nutsdb/nutsdb"
)

const (
	bucketTasks = "tasks"
	bucketMeta  = "meta"
)

// countKey holds the number of tasks ever added. Task keys are the
// zero-padded sequence numbers 0..count-1, so lexicographic key order
// is insertion order and an index maps straight to a key.
var countKey = []byte("count")

// NutsStore implements the Store interface on a nutsdb key-value store.
type NutsStore struct {
	db *nutsdb.DB
}

// NewNutsStore opens (or creates) a nutsdb store in the given directory.
func NewNutsStore(dir string) (*NutsStore, error) {
	opts := nutsdb.DefaultOptions
	opts.Dir = dir
	db, err := nutsdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open nutsdb: %w", err)
	}

	// Ensure buckets exist
	if err := db.Update(func(tx *nutsdb.Tx) error {
		if err := tx.NewBucket(nutsdb.DataStructureBTree, bucketTasks); err != nil {
			return err
		}
		if err := tx.NewBucket(nutsdb.DataStructureBTree, bucketMeta); err != nil {
			return err
		}
		return nil
	}); err != nil {
		if !errors.Is(err, nutsdb.ErrBucketAlreadyExist) {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create buckets: %w", err)
		}
	}

	return &NutsStore{db: db}, nil
}

// AddTask implements Store. The task is written at the current counter
// position and the counter bumped in the same transaction.
func (s *NutsStore) AddTask(ctx context.Context, description string) error {
	data, err := json.Marshal(Task{Description: description})
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	return s.db.Update(func(tx *nutsdb.Tx) error {
		n, err := taskCount(tx)
		if err != nil {
			return err
		}
		if err := tx.Put(bucketTasks, taskKey(n), data, 0); err != nil {
			return err
		}
		return tx.Put(bucketMeta, countKey, []byte(strconv.Itoa(n+1)), 0)
	})
}

// ListTasks implements Store.
func (s *NutsStore) ListTasks(ctx context.Context) ([]string, error) {
	tasks, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return displayStrings(tasks), nil
}

// Snapshot implements Store.
func (s *NutsStore) Snapshot(ctx context.Context) ([]Task, error) {
	var tasks []Task

	err := s.db.View(func(tx *nutsdb.Tx) error {
		n, err := taskCount(tx)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			v, err := tx.Get(bucketTasks, taskKey(i))
			if err != nil {
				return fmt.Errorf("failed to load task %d: %w", i, err)
			}
			var task Task
			if err := json.Unmarshal(v, &task); err != nil {
				return fmt.Errorf("failed to unmarshal task: %w", err)
			}
			tasks = append(tasks, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// MarkCompleted implements Store. Out-of-range indexes write nothing.
func (s *NutsStore) MarkCompleted(ctx context.Context, index int) error {
	if index < 0 {
		return nil
	}
	return s.db.Update(func(tx *nutsdb.Tx) error {
		n, err := taskCount(tx)
		if err != nil {
			return err
		}
		if index >= n {
			return nil
		}
		v, err := tx.Get(bucketTasks, taskKey(index))
		if err != nil {
			return fmt.Errorf("failed to load task %d: %w", index, err)
		}
		var task Task
		if err := json.Unmarshal(v, &task); err != nil {
			return fmt.Errorf("failed to unmarshal task: %w", err)
		}
		task.Completed = true
		data, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to marshal task: %w", err)
		}
		return tx.Put(bucketTasks, taskKey(index), data, 0)
	})
}

// Close closes the store.
func (s *NutsStore) Close() error {
	return s.db.Close()
}

func taskKey(i int) []byte {
	return []byte(fmt.Sprintf("%020d", i))
}

// taskCount reads the counter; a missing key means an empty store.
func taskCount(tx *nutsdb.Tx) (int, error) {
	v, err := tx.Get(bucketMeta, countKey)
	if err != nil {
		return 0, nil
	}
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0, fmt.Errorf("corrupt task counter: %w", err)
	}
	return n, nil
}
