package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/faize-ai/pomo/internal/config"
	"github.com/faize-ai/pomo/internal/log"
	"github.com/faize-ai/pomo/internal/notify"
	"github.com/faize-ai/pomo/internal/session"
	"github.com/faize-ai/pomo/internal/shell"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	debug   bool

	workMinutes       int
	shortBreakMinutes int
	longBreakMinutes  int
	skipPrompt        bool
	noNotify          bool
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomodoro timer for the terminal",
	Long: `pomo guides you through alternating work and break intervals and sends
a desktop notification whenever an interval starts or ends.

Start a session:
  pomo
  pomo --work 50 --short-break 10 --yes

While running, type a command and press enter:
  s start | p pause | r resume | x reset | t stop | i status | h help | e exit

Review past sessions:
  pomo history`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.pomo/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.Flags().IntVarP(&workMinutes, "work", "w", 0, "work duration in minutes (overrides config)")
	rootCmd.Flags().IntVar(&shortBreakMinutes, "short-break", 0, "short break duration in minutes (overrides config)")
	rootCmd.Flags().IntVar(&longBreakMinutes, "long-break", 0, "long break duration in minutes (overrides config)")
	rootCmd.Flags().BoolVarP(&skipPrompt, "yes", "y", false, "skip the duration prompt and use configured values")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "disable desktop notifications")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setupLogging points the global logger at the configured log file. The
// returned closer must be called on exit.
func setupLogging(cfg *config.Config) func() {
	level := cfg.Log.Level
	if debug {
		level = "debug"
	}

	f, err := log.OpenFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return func() {}
	}
	log.Configure(log.Config{Level: level, Output: f})
	return func() { _ = f.Close() }
}

func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closeLog := setupLogging(cfg)
	defer closeLog()

	logger := log.WithComponent("cmd")
	logger.Debug().Str("config", viper.ConfigFileUsed()).Msg("config loaded")

	// Flags override the config file
	if cmd.Flags().Changed("work") {
		cfg.Durations.Work = workMinutes
	}
	if cmd.Flags().Changed("short-break") {
		cfg.Durations.ShortBreak = shortBreakMinutes
	}
	if cmd.Flags().Changed("long-break") {
		cfg.Durations.LongBreak = longBreakMinutes
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notifications.ShouldNotify() && !noNotify {
		notifier = notify.NewDesktop(cfg.Notifications.AppName)
	}

	sh := shell.New(shell.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Notifier:  notifier,
		Config:    cfg.Durations.Timer(),
		Prompt:    cfg.Prompt && !skipPrompt,
		AutoStart: cfg.AutoStart,
	})

	if cfg.History.ShouldRecord() {
		store, err := session.NewStore()
		if err != nil {
			// History is optional; the timer still runs
			logger.Warn().Err(err).Msg("session history disabled")
		} else {
			recorder := session.NewRecorder(store, sh.Controller())
			sh.Observe(recorder.Handle)
		}
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return sh.Run(ctx)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
