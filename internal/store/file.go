package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists tasks in a plain text file, one task per line:
//
//	<description>,<true|false>
//
// The store holds no open file handle and no cached state between calls;
// every operation opens the file, works, and closes it. Files written by
// other runs of the program (or by hand) are picked up on the next read.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
// The file is created on the first AddTask; a missing file reads as an
// empty store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// AddTask implements Store. The task is appended as a single line with
// the completed flag set to false.
func (s *FileStore) AddTask(ctx context.Context, description string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open task file: %w", err)
	}
	if _, err := fmt.Fprintln(f, encodeTask(Task{Description: description})); err != nil {
		f.Close()
		return fmt.Errorf("failed to append task: %w", err)
	}
	return f.Close()
}

// ListTasks implements Store.
func (s *FileStore) ListTasks(ctx context.Context) ([]string, error) {
	tasks, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return displayStrings(tasks), nil
}

// Snapshot implements Store. A missing file is an empty store, not an
// error.
func (s *FileStore) Snapshot(ctx context.Context) ([]Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open task file: %w", err)
	}
	defer f.Close()

	var tasks []Task
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		tasks = append(tasks, decodeTask(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	return tasks, nil
}

// MarkCompleted implements Store. The whole file is re-read, the task
// flipped in memory, and the file rewritten. Out-of-range indexes leave
// the file untouched.
func (s *FileStore) MarkCompleted(ctx context.Context, index int) error {
	tasks, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return nil
	}
	tasks[index].Completed = true
	return s.rewrite(tasks)
}

// Close implements Store. Nothing is held between calls, so it is a
// no-op.
func (s *FileStore) Close() error {
	return nil
}

// rewrite replaces the task file with the encoded tasks. The content
// goes to a temp file in the same directory, synced and renamed over
// the original, so a failure mid-write cannot truncate existing tasks.
func (s *FileStore) rewrite(tasks []Task) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, encodeTask(t)); err != nil {
			return fmt.Errorf("failed to write task: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to chmod task file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync task file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close task file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace task file: %w", err)
	}
	committed = true
	return nil
}

// encodeTask renders one task line: the raw description, a comma, then
// the literal "true" or "false".
func encodeTask(t Task) string {
	return fmt.Sprintf("%s,%t", t.Description, t.Completed)
}

// decodeTask parses one task line. The completed flag is the text after
// the last comma compared against the literal "true"; the description is
// everything before it. The flag field never contains a comma, so
// splitting at the last one keeps descriptions with embedded commas
// intact. A line without a comma is a never-completed task whose
// description is the whole line.
func decodeTask(line string) Task {
	i := strings.LastIndex(line, ",")
	if i < 0 {
		return Task{Description: line}
	}
	return Task{Description: line[:i], Completed: line[i+1:] == "true"}
}
