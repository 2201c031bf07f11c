package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/freefall/internal/config"
	"github.com/san-kum/freefall/internal/sampler"
)

func newTestCommand(t *testing.T, cfgPath string) *cobra.Command {
	t.Helper()
	configFile = cfgPath
	t.Cleanup(func() { configFile = "" })

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&dataDir, "data", config.DefaultDataDir, "")
	return cmd
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "freefall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestStoreFor_ConfigDataDir(t *testing.T) {
	dir := t.TempDir()
	runsDir := filepath.Join(dir, "runs")
	cmd := newTestCommand(t, writeConfig(t, dir, "data_dir: "+runsDir+"\n"))

	cfg, m, err := setup(cmd)
	require.NoError(t, err)
	assert.Equal(t, runsDir, cfg.DataDir)

	// save the way drop --save does
	saver := newStore(cfg)
	require.NoError(t, saver.Init())
	p := cfg.Params()
	frames, err := sampler.Render(context.Background(), m, p, 10)
	require.NoError(t, err)
	runID, err := saver.Save(cfg.Body, m, p, frames)
	require.NoError(t, err)

	st, err := storeFor(cmd)
	require.NoError(t, err)
	assert.Equal(t, runsDir, st.Dir())

	runs, err := st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, 10, meta.Frames)
}

func TestStoreFor_DataFlagWins(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "override")
	cmd := newTestCommand(t, writeConfig(t, dir, "data_dir: "+filepath.Join(dir, "runs")+"\n"))
	require.NoError(t, cmd.Flags().Set("data", override))

	st, err := storeFor(cmd)
	require.NoError(t, err)
	assert.Equal(t, override, st.Dir())
}

func TestStoreFor_Default(t *testing.T) {
	cmd := newTestCommand(t, "")

	st, err := storeFor(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDataDir, st.Dir())
}
