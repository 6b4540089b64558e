package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/rdeusser/selectable/selectable"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
)

type session struct {
	list   *selectable.List[string]
	logger *zap.Logger
	out    io.Writer
}

func newSession(list *selectable.List[string], logger *zap.Logger, out io.Writer) *session {
	return &session{
		list:   list,
		logger: logger,
		out:    out,
	}
}

// run executes one command per line until r is exhausted. A failing command
// is logged and does not stop the session.
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if err := s.exec(fields[0], fields[1:]); err != nil {
			s.logger.Error("command failed", zap.String("command", fields[0]), zap.Error(err))
		}
	}

	return scanner.Err()
}

func (s *session) exec(cmd string, args []string) error {
	switch cmd {
	case "set":
		s.list.SetElements(args)
		return nil
	case "select":
		return withElement(args, s.list.Select)
	case "select-at":
		return withIndex(args, s.list.SelectAt)
	case "deselect":
		return withElement(args, s.list.Deselect)
	case "deselect-at":
		return withIndex(args, s.list.DeselectAt)
	case "clear":
		s.list.DeselectAll()
		return nil
	case "show":
		s.show()
		return nil
	case "selected":
		s.selected()
		return nil
	default:
		return fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
}

func (s *session) show() {
	highlight := color.New(color.FgGreen, color.Bold)

	for i, e := range s.list.Elements() {
		if s.list.IsSelected(i) {
			fmt.Fprintf(s.out, "* %d %s\n", i, highlight.Sprint(e))
		} else {
			fmt.Fprintf(s.out, "  %d %s\n", i, e)
		}
	}
}

func (s *session) selected() {
	if !s.list.AllowsMultipleSelection() {
		if e, ok := s.list.SelectedElement(); ok {
			fmt.Fprintln(s.out, e)
		} else {
			fmt.Fprintln(s.out, "(none)")
		}

		return
	}

	fmt.Fprintln(s.out, strings.Join(s.list.SelectedElements(), " "))
}

func withElement(args []string, fn func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected 1, got %d: %w", len(args), ErrArguments)
	}

	return fn(args[0])
}

func withIndex(args []string, fn func(int) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected 1, got %d: %w", len(args), ErrArguments)
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}

	return fn(index)
}
