// Package console implements the interactive menu controller.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"taskline/internal/store"
)

// Controller drives the interactive menu loop. It owns a single store
// for the session and talks to the store only through its interface;
// persistence details never leak into the menu.
type Controller struct {
	store  store.Store
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

// New creates a controller reading menu input from in.
func New(st store.Store, in io.Reader, out, errOut io.Writer) *Controller {
	return &Controller{
		store:  st,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
	}
}

// Run shows the menu until the user exits, input ends, or the context
// is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, "\nTask Manager\n")
		fmt.Fprint(c.out, "1. View tasks\n")
		fmt.Fprint(c.out, "2. Add task\n")
		fmt.Fprint(c.out, "3. Mark task as completed\n")
		fmt.Fprint(c.out, "4. Exit\n")
		fmt.Fprint(c.out, "Choose an option: ")

		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			c.viewTasks(ctx)
		case 2:
			c.addTask(ctx)
		case 3:
			c.markTaskCompleted(ctx)
		case 4:
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Controller) viewTasks(ctx context.Context) {
	tasks, err := c.store.ListTasks(ctx)
	if err != nil {
		fmt.Fprintf(c.errOut, "error: %v\n", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks available.")
		return
	}
	c.printTasks(tasks)
}

func (c *Controller) addTask(ctx context.Context) {
	fmt.Fprint(c.out, "Enter a new task: ")
	line, ok := c.readLine()
	if !ok {
		return
	}
	if err := c.store.AddTask(ctx, store.NormalizeDescription(line)); err != nil {
		fmt.Fprintf(c.errOut, "error: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Task added successfully.")
}

func (c *Controller) markTaskCompleted(ctx context.Context) {
	tasks, err := c.store.ListTasks(ctx)
	if err != nil {
		fmt.Fprintf(c.errOut, "error: %v\n", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks available to mark as completed.")
		return
	}

	c.printTasks(tasks)

	fmt.Fprint(c.out, "Enter the task number to mark as completed: ")
	line, ok := c.readLine()
	if !ok {
		return
	}
	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid task number.")
		return
	}

	// Out-of-range numbers are a silent no-op in the store; the menu
	// reports success either way.
	if err := c.store.MarkCompleted(ctx, num-1); err != nil {
		fmt.Fprintf(c.errOut, "error: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Task marked as completed.")
}

// printTasks lists tasks with 1-based numbering.
func (c *Controller) printTasks(tasks []string) {
	fmt.Fprint(c.out, "\nTasks:\n")
	for i, task := range tasks {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, task)
	}
}

// readLine reads one raw input line. The second return is false when
// input is exhausted.
func (c *Controller) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
