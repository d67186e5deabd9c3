package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faize-ai/pomo/internal/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs the root command with a throwaway config file.
func executeRoot(t *testing.T, input string, args ...string) string {
	t.Helper()
	viper.Reset()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	contents := fmt.Sprintf("notifications:\n  enabled: false\nhistory:\n  enabled: false\nlog:\n  file: %q\n",
		filepath.Join(dir, "pomo.log"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0644))

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile = ""
		viper.Reset()
		log.Configure(log.Config{})
	})

	require.NoError(t, Execute())
	return out.String()
}

func TestRootRunsTimer(t *testing.T) {
	out := executeRoot(t, "i\ne\n", "--yes", "--work", "50")

	assert.NotContains(t, out, "Would you like to use default values")
	assert.Contains(t, out, "Starting work timer for 50 minutes...")
	assert.Contains(t, out, "time left 50:00")
	assert.Contains(t, out, "Exiting Timer. Goodbye!")
}

func TestConfigShow(t *testing.T) {
	out := executeRoot(t, "", "config", "show")

	assert.Contains(t, out, "durations:")
	assert.Contains(t, out, "work: 25")
	assert.Contains(t, out, "enabled: false")
	assert.Contains(t, out, "pomo.log")
}

func TestConfigInitCreatesDefaultDir(t *testing.T) {
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	t.Cleanup(func() {
		homedir.DisableCache = false
		configInitCmd.SetOut(nil)
		configInitForce = false
	})

	cfgFile = ""
	require.NoError(t, runConfigInit(configInitCmd, nil))

	path := filepath.Join(home, ".pomo", "config.yaml")
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Wrote default config to "+path)

	err := runConfigInit(configInitCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	configInitForce = true
	require.NoError(t, runConfigInit(configInitCmd, nil))
}
