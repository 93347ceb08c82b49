package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAllConfigAppliesEnvVar(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "01", "")

	t.Setenv("TESTPREFIX_FORMAT", "HITS")

	require.NoError(t, setAllConfig(viper.New(), flags, "TESTPREFIX"))
	value, err := flags.GetString("format")
	require.NoError(t, err)
	assert.Equal(t, "HITS", value)
}

func TestSetAllConfigFlagTakesPriorityOverEnv(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "01", "")
	require.NoError(t, flags.Set("format", "B8"))

	t.Setenv("TESTPREFIX_FORMAT", "HITS")

	require.NoError(t, setAllConfig(viper.New(), flags, "TESTPREFIX"))
	value, err := flags.GetString("format")
	require.NoError(t, err)
	assert.Equal(t, "B8", value)
}

func TestSetAllConfigRejectsUnknownConfigFileKey(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "01", "")
	flags.String("config", "", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`not-a-real-flag = "x"`), 0o644))
	require.NoError(t, flags.Set("config", path))

	err := setAllConfig(viper.New(), flags, "TESTPREFIX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-real-flag")
	assert.Contains(t, err.Error(), "valid options are")
}
