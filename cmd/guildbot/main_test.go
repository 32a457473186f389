package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/config"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: "non-existent-config.yml",
	}

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: tmpFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_NoToken(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("discord:\n  token: \"\"\n"), 0o600))

	err := run(context.Background(), Opts{Config: tmpFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discord token is not set")
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing file ignored", func(t *testing.T) {
		require.NoError(t, loadEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("empty path", func(t *testing.T) {
		require.NoError(t, loadEnv(""))
	})

	t.Run("vars loaded", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("GUILDBOT_TEST_TOKEN=abc123\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("GUILDBOT_TEST_TOKEN") })

		require.NoError(t, loadEnv(envFile))
		assert.Equal(t, "abc123", os.Getenv("GUILDBOT_TEST_TOKEN"))
	})

	t.Run("env file feeds config", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("GUILDBOT_TEST_KEY=sk-test\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("GUILDBOT_TEST_KEY") })
		cfgFile := filepath.Join(dir, "config.yml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("llm:\n  api_key: ${GUILDBOT_TEST_KEY}\n"), 0o600))

		require.NoError(t, loadEnv(envFile))
		cfg, err := config.Load(cfgFile)
		require.NoError(t, err)
		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	})
}

func TestResetDatabase(t *testing.T) {
	t.Run("existing database moved aside", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := filepath.Join(dir, "guildbot.db")
		require.NoError(t, os.WriteFile(dbPath, []byte("data"), 0o600))

		cfg := &config.Config{}
		config.SetDefaults(cfg)
		cfg.Database.Path = dbPath

		require.NoError(t, resetDatabase(context.Background(), cfg))
		_, err := os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))

		backups, err := filepath.Glob(dbPath + ".*.bak")
		require.NoError(t, err)
		require.Len(t, backups, 1)
		data, err := os.ReadFile(backups[0])
		require.NoError(t, err)
		assert.Equal(t, "data", string(data))
	})

	t.Run("nothing to back up", func(t *testing.T) {
		cfg := &config.Config{}
		config.SetDefaults(cfg)
		cfg.Database.Path = filepath.Join(t.TempDir(), "missing.db")
		require.NoError(t, resetDatabase(context.Background(), cfg))
	})
}

func TestMakeScheduler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := makeScheduler(config.QOTDConfig{Time: "09:30", Timezone: "UTC", RetryInterval: time.Minute}, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, s)
		assert.Equal(t, "", s.Status().State)
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := makeScheduler(config.QOTDConfig{Time: "25:99", Timezone: "UTC"}, nil, nil, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid qotd.time")
	})

	t.Run("bad zone", func(t *testing.T) {
		_, err := makeScheduler(config.QOTDConfig{Time: "16:00", Timezone: "Mars/Olympus"}, nil, nil, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid qotd.timezone")
	})
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		// empty secrets are skipped
		setupLog(true, "secret1", "", "secret2")
	})
}
