package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/faize-ai/pomo/internal/timer"
)

// askSettings asks whether to keep the configured durations and, if not,
// reads custom ones. It returns false if input ended or ctx was cancelled.
func (s *Shell) askSettings(ctx context.Context, lines <-chan string) bool {
	cfg := s.ctrl.Config()
	answer, ok := s.ask(ctx, lines, fmt.Sprintf(
		"Would you like to use default values ( Work %d minutes | Short Break %d minutes | Long Break %d minutes )? (y/n): ",
		cfg.WorkSeconds/60, cfg.ShortBreakSeconds/60, cfg.LongBreakSeconds/60))
	if !ok {
		return false
	}

	if strings.ToLower(strings.TrimSpace(answer)) != "n" {
		s.r.info("Using default values.")
		return true
	}

	var values [3]int
	prompts := [3]string{
		"Enter work duration in minutes: ",
		"Enter short break duration in minutes: ",
		"Enter long break duration in minutes: ",
	}
	for i, prompt := range prompts {
		input, ok := s.ask(ctx, lines, prompt)
		if !ok {
			return false
		}
		values[i] = parseMinutes(input)
	}
	s.ctrl.Configure(values[0], values[1], values[2])
	s.logger.Debug().Ints("minutes", values[:]).Msg("custom durations set")
	s.r.info("Custom durations set.")
	return true
}

func (s *Shell) ask(ctx context.Context, lines <-chan string, prompt string) (string, bool) {
	_, _ = fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

// parseMinutes reads the leading digits of input. Input without leading
// digits, or a value too long to time, yields 0, which the controller
// replaces with the default.
func parseMinutes(input string) int {
	input = strings.TrimSpace(input)
	end := 0
	for end < len(input) && input[end] >= '0' && input[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(input[:end])
	if err != nil || n > timer.MaxMinutes {
		return 0
	}
	return n
}
