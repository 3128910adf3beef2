package app_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marsdome/internal/app"
	"marsdome/internal/config"
)

func TestNewWire_Defaults(t *testing.T) {
	a, err := app.NewWire(app.Config{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), a.Settings)
	assert.NotNil(t, a.Dome)
	assert.NotNil(t, a.Log)
}

func TestNewWire_RejectsInvalidSettings(t *testing.T) {
	bad := config.Default()
	bad.Output.Format = "csv"
	_, err := app.NewWire(app.Config{Settings: &bad})
	assert.Error(t, err)
}

func TestApp_ShellUsesConfiguredExitWord(t *testing.T) {
	settings := config.Default()
	settings.Shell.ExitWord = "quit"

	var out, logs bytes.Buffer
	a, err := app.NewWire(app.Config{
		Settings: &settings,
		In:       strings.NewReader("10\n\n\nquit\n"),
		Out:      &out,
		Err:      &logs,
	})
	require.NoError(t, err)

	require.NoError(t, a.Shell().Run(context.Background()))
	assert.Contains(t, out.String(), "area ==> 157.08")
	assert.Contains(t, out.String(), `Type "quit" at any prompt to quit.`)
}
