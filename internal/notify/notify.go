// Package notify delivers best-effort desktop notifications.
package notify

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/faize-ai/pomo/internal/log"
)

// ErrUnsupported is returned on platforms without a known notification command.
var ErrUnsupported = errors.New("desktop notifications not supported on this platform")

// Notifier sends a notification with a title and message.
type Notifier interface {
	Notify(title, message string) error
}

// Noop discards every notification.
type Noop struct{}

func (Noop) Notify(title, message string) error {
	return nil
}

// Desktop shells out to the platform notification tool. Commands are started
// without waiting for them to finish.
type Desktop struct {
	appName string
	goos    string
	start   func(name string, args ...string) error
}

// NewDesktop creates a Desktop notifier for the current platform.
func NewDesktop(appName string) *Desktop {
	return &Desktop{
		appName: appName,
		goos:    runtime.GOOS,
		start:   startDetached,
	}
}

// Notify starts the notification command for the configured platform.
func (d *Desktop) Notify(title, message string) error {
	name, args, err := command(d.goos, d.appName, title, message)
	if err != nil {
		return err
	}
	if err := d.start(name, args...); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// command builds the notification command line for goos.
func command(goos, appName, title, message string) (string, []string, error) {
	switch goos {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(message), strconv.Quote(title))
		return "osascript", []string{"-e", script}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		args := []string{}
		if appName != "" {
			args = append(args, "--app-name", appName)
		}
		args = append(args, title, message)
		return "notify-send", args, nil
	default:
		return "", nil, ErrUnsupported
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			l := log.WithComponent("notify")
			l.Debug().Err(err).Str("command", name).Msg("notification command failed")
		}
	}()
	return nil
}
