// Package shell runs the interactive command loop around the timer: it reads
// single-letter commands, prints status and forwards events to the notifier.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/faize-ai/pomo/internal/log"
	"github.com/faize-ai/pomo/internal/notify"
	"github.com/faize-ai/pomo/internal/timer"
	"github.com/rs/zerolog"
)

const helpText = "Available commands: s - start | p - pause | r - resume | x - reset | t - stop | i - status | h - show options | e - exit"

// Options configures a Shell.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Notifier notify.Notifier
	Config   timer.Config
	// TickInterval is the countdown period; zero means one second.
	TickInterval time.Duration
	// Prompt asks for default or custom durations before the first start.
	Prompt bool
	// AutoStart begins the first cycle once settings are chosen.
	AutoStart bool
}

// Shell owns a Controller and drives it from a single goroutine.
type Shell struct {
	in        io.Reader
	out       io.Writer
	prompt    bool
	autoStart bool

	sched  *timer.LoopScheduler
	ctrl   *timer.Controller
	r      *renderer
	logger zerolog.Logger
}

// New creates a Shell. Nil In, Out or Notifier fall back to an empty
// reader, io.Discard and notify.Noop.
func New(opts Options) *Shell {
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Noop{}
	}

	logger := log.WithComponent("shell")
	sched := timer.NewLoopScheduler()
	ctrl := timer.NewController(sched, timer.Options{
		Config:       opts.Config,
		TickInterval: opts.TickInterval,
	})
	r := &renderer{out: opts.Out, notifier: opts.Notifier, logger: logger}
	ctrl.Observe(r.Handle)

	return &Shell{
		in:        opts.In,
		out:       opts.Out,
		prompt:    opts.Prompt,
		autoStart: opts.AutoStart,
		sched:     sched,
		ctrl:      ctrl,
		r:         r,
		logger:    logger,
	}
}

// Controller returns the controller driven by this shell. It must only be
// used from handlers registered with Observe.
func (s *Shell) Controller() *timer.Controller {
	return s.ctrl
}

// Observe registers an additional event handler. Call it before Run.
func (s *Shell) Observe(handler timer.Handler) {
	s.ctrl.Observe(handler)
}

// Run processes input until the exit command, end of input or ctx
// cancellation. The timer is always stopped before Run returns. On
// cancellation the input reader may stay blocked on In until it yields a line
// or reaches end of input.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	lines, readErr := readLines(s.in, done)
	defer func() {
		close(done)
		s.sched.Wait()
	}()

	s.r.println(bannerStyle.Render("Welcome to Pomodoro Timer"))

	if s.prompt && !s.askSettings(ctx, lines) {
		s.shutdown()
		return inputErr(readErr)
	}
	if s.autoStart {
		s.r.info("Starting the timer...")
		s.report("s", s.ctrl.Start())
	} else {
		s.r.info(`Type "s" to start or "h" to show options.`)
	}

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return nil
		case line, ok := <-lines:
			if !ok {
				s.shutdown()
				return inputErr(readErr)
			}
			if exit := s.dispatch(line); exit {
				return nil
			}
		case task := <-s.sched.Tasks():
			task()
		}
	}
}

// dispatch executes one command line and reports whether the shell should exit.
func (s *Shell) dispatch(line string) bool {
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "s":
		s.report(command, s.ctrl.Start())
	case "p":
		s.report(command, s.ctrl.Pause())
	case "r":
		s.report(command, s.ctrl.Resume())
	case "x":
		s.report(command, s.ctrl.Reset())
	case "t":
		s.report(command, s.ctrl.Stop())
	case "i":
		s.r.status(s.ctrl.State())
	case "h":
		s.r.println(helpText)
	case "e":
		s.shutdown()
		s.r.println("Exiting Timer. Goodbye!")
		return true
	default:
		s.r.warn(`Unknown command. Use "h" to show available options.`)
	}
	return false
}

// report prints the informational message for a rejected command.
func (s *Shell) report(command string, err error) {
	if err == nil {
		return
	}
	s.logger.Debug().Err(err).Str("command", command).Msg("command ignored")

	switch {
	case errors.Is(err, timer.ErrAlreadyRunning):
		s.r.warn("Timer is already running. Please wait until it finishes.")
	case errors.Is(err, timer.ErrAlreadyPaused):
		s.r.warn("Timer is already paused.")
	case errors.Is(err, timer.ErrNotPaused):
		s.r.warn("Timer is not paused.")
	case errors.Is(err, timer.ErrNothingRunning), errors.Is(err, timer.ErrNothingToReset):
		s.r.warn("No timer is currently running.")
	default:
		s.r.warn(err.Error())
	}
}

// shutdown stops any active countdown; an idle timer is left alone.
func (s *Shell) shutdown() {
	if err := s.ctrl.Stop(); err != nil && !errors.Is(err, timer.ErrNothingRunning) {
		s.logger.Warn().Err(err).Msg("failed to stop timer")
	}
}

// readLines streams lines from r until EOF or until done is closed.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- err
		}
	}()

	return lines, errc
}

func inputErr(errc <-chan error) error {
	select {
	case err := <-errc:
		return fmt.Errorf("failed to read input: %w", err)
	default:
		return nil
	}
}
