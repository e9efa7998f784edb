package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"taskline/internal/cli"
	"taskline/internal/commands"
	"taskline/internal/config"
	"taskline/internal/exitcode"
	"taskline/internal/store"
	"taskline/internal/testutil"
)

// testFactory creates a store factory that returns the given store.
func testFactory(st store.Store) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (store.Store, error) {
		return st, nil
	}
}

// runDispatcher runs the dispatcher with the given args and input.
func runDispatcher(t *testing.T, factory cli.StoreFactory, args []string, input string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("TASKLINE_STORE", "")

	var outBuf, errBuf bytes.Buffer
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	code = dispatcher.Run(context.Background(), args, strings.NewReader(input), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"unknowncmd"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"--quiet"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"help"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"version"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskline 0.1.0\n" {
		t.Errorf("expected 'taskline 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"help", "--unknown"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoArgsOpensMenu(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), nil, "4\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Task Manager") {
		t.Error("expected menu banner in output")
	}
	if !strings.Contains(stdout, "Exiting...") {
		t.Error("expected exit message in output")
	}
}

func TestDispatcher_AliasDispatch(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"ls"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found\\n', got %q", stdout)
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"add", "--quiet", "Buy", "milk"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestDispatcher_DebugFlag(t *testing.T) {
	_, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"list", "--debug", "--store", "memory"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr, "debug: using memory store") {
		t.Errorf("expected debug line on stderr, got %q", stderr)
	}
}

func TestDispatcher_ClosesStore(t *testing.T) {
	fake := testutil.NewFakeStore()

	_, _, code := runDispatcher(t, testFactory(fake), []string{"list"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !fake.Closed {
		t.Error("expected store to be closed after dispatch")
	}
}

func TestDispatcher_StoreFactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (store.Store, error) {
		return nil, errors.New("cannot open store")
	}

	stdout, stderr, code := runDispatcher(t, factory, []string{"list"}, "")

	if code != exitcode.StoreError {
		t.Errorf("expected exit code %d, got %d", exitcode.StoreError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: store error: cannot open store\n" {
		t.Errorf("expected store error, got %q", stderr)
	}
}

func TestDispatcher_NilFactory(t *testing.T) {
	_, stderr, code := runDispatcher(t, nil, []string{"list"}, "")

	if code != exitcode.StoreError {
		t.Errorf("expected exit code %d, got %d", exitcode.StoreError, code)
	}
	if stderr != "error: store unavailable\n" {
		t.Errorf("expected store unavailable error, got %q", stderr)
	}
}

func TestDispatcher_UnknownStoreKind(t *testing.T) {
	_, stderr, code := runDispatcher(t, testFactory(store.NewMemoryStore()), []string{"list", "--store", "redis"}, "")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if stderr != "error: unknown store kind: redis\n" {
		t.Errorf("expected unknown store kind error, got %q", stderr)
	}
}

func TestDispatcher_NilFactoryVersionStillWorks(t *testing.T) {
	stdout, _, code := runDispatcher(t, nil, []string{"version"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "taskline 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}
