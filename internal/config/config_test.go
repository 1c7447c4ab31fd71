package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/config"
	"github.com/lgbarn/pgn-tree-go/internal/testutil"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.LineWidth, 80)
	testutil.AssertEqual(t, cfg.LogLevel, "warn")
	testutil.AssertTrue(t, cfg.Workers >= 1)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgntree.yaml")
	content := "line_width: 100\nworkers: 2\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.LineWidth, 100)
	testutil.AssertEqual(t, cfg.Workers, 2)
	testutil.AssertEqual(t, cfg.LogLevel, "debug")
}

func TestLoadClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgntree.yaml")
	if err := os.WriteFile(path, []byte("line_width: 5\nworkers: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.LineWidth, 20)
	testutil.AssertEqual(t, cfg.Workers, 1)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	testutil.AssertError(t, err)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("PGNTREE_LINE_WIDTH", "66")
	cfg, err := config.Load("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.LineWidth, 66)
}
