package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/marauder/internal/app"
)

func captureRun(t *testing.T) *app.Options {
	t.Helper()
	var got app.Options
	prev := runApp
	runApp = func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	}
	t.Cleanup(func() { runApp = prev })
	return &got
}

func TestRootCmdPassesFlags(t *testing.T) {
	got := captureRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--config", "/tmp/c.toml",
		"--prefs", "/tmp/p.toml",
		"-c", "https://example.test/characters.json",
		"--log-level", "debug",
		"--locale", "en",
	})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	require.Equal(t, "/tmp/c.toml", got.ConfigPath)
	require.Equal(t, "/tmp/p.toml", got.PrefsPath)
	require.Equal(t, "https://example.test/characters.json", got.Overrides.Catalog)
	require.Equal(t, "debug", got.Overrides.LogLevel)
	require.Equal(t, "en", got.Overrides.Locale)
}

func TestRootCmdDefaultsAreEmpty(t *testing.T) {
	got := captureRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, app.Options{}, *got)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	captureRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"harry"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestRootCmdReturnsRunError(t *testing.T) {
	boom := errors.New("boom")
	prev := runApp
	runApp = func(context.Context, app.Options) error { return boom }
	t.Cleanup(func() { runApp = prev })

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	require.ErrorIs(t, cmd.ExecuteContext(context.Background()), boom)
}
