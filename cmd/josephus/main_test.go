package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvring/scenario"
)

// runApp executes the CLI with args and returns its stdout.
func runApp(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()
	log.Logger = zerolog.Nop()

	var out bytes.Buffer
	app := newApp(&cfg)
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"josephus"}, args...))
	return out.String(), err
}

func TestRun_CountN(t *testing.T) {
	out, err := runApp(t, defaultConfig(), "run", "--n", "5")
	require.NoError(t, err)
	assert.Equal(t, "initial: [1 2 3 4 5]\neliminated: [3 1 5 2 4]\n", out)
}

func TestRun_ValuesOnce(t *testing.T) {
	out, err := runApp(t, defaultConfig(), "run", "--values", "aaa,bbb,ccc,ddd,eee", "--mode", "once")
	require.NoError(t, err)
	assert.Equal(t, "initial: [aaa bbb ccc ddd eee]\neliminated: [ccc ddd eee aaa bbb]\n", out)
}

func TestRun_RepeatedValues(t *testing.T) {
	out, err := runApp(t, defaultConfig(), "run", "--values", "a,b", "--values", "c", "--step", "2")
	require.NoError(t, err)
	assert.Equal(t, "initial: [a b c]\neliminated: [b a c]\n", out)

	_, err = runApp(t, defaultConfig(), "run", "--values", ",,")
	assert.Error(t, err, "only empty parts")
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, splitValues([]string{"a,b", "c", " d ,"}))
	assert.Empty(t, splitValues([]string{"", ","}))
	assert.Empty(t, splitValues(nil))
}

func TestRun_ConfigDefaults(t *testing.T) {
	cfg := defaultConfig()
	cfg.Step = 2
	out, err := runApp(t, cfg, "run", "--n", "7")
	require.NoError(t, err)
	assert.Equal(t, "initial: [1 2 3 4 5 6 7]\neliminated: [2 4 6 1 5 3 7]\n", out)
}

func TestRun_YAMLOutput(t *testing.T) {
	out, err := runApp(t, defaultConfig(), "run", "--n", "5", "--output", "yaml")
	require.NoError(t, err)

	var res scenario.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, scenario.ModeRun, res.Mode)
	assert.Equal(t, []string{"3", "1", "5", "2", "4"}, res.Eliminated)
}

func TestRun_Errors(t *testing.T) {
	_, err := runApp(t, defaultConfig(), "run")
	assert.Error(t, err, "neither --values nor --n")

	_, err = runApp(t, defaultConfig(), "run", "--n", "3", "--step", "0")
	assert.ErrorIs(t, err, scenario.ErrBadParameter)

	_, err = runApp(t, defaultConfig(), "run", "--n", "3", "--mode", "twice")
	assert.ErrorIs(t, err, scenario.ErrUnknownMode)

	_, err = runApp(t, defaultConfig(), "run", "--n", "3", "--output", "json")
	assert.Error(t, err)
}

func TestScenarioCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	body := "name = \"demo\"\nvalues = [\"a\", \"b\", \"c\", \"d\"]\nstart = 1\nstep = 2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := runApp(t, defaultConfig(), "scenario", path)
	require.NoError(t, err)
	assert.Equal(t, "initial: [a b c d]\neliminated: [b d c a]\n", out)

	_, err = runApp(t, defaultConfig(), "scenario")
	assert.Error(t, err)
}

func TestSurvivorCommand(t *testing.T) {
	out, err := runApp(t, defaultConfig(), "survivor", "--n", "41", "--k", "3")
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)

	out, err = runApp(t, defaultConfig(), "survivor", "--n", "41", "--k", "2")
	require.NoError(t, err)
	assert.Equal(t, "19\n", out)

	_, err = runApp(t, defaultConfig(), "survivor", "--n", "0")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.InfoLevel, true)

	logger.Debug().Msg("hidden")
	logger.Info().Int("round", 1).Msg("eliminated")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "eliminated")
	assert.Contains(t, out, "round=1")
}
