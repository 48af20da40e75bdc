package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, *pflag.FlagSet) {
	t.Helper()
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	cfg.Roots = fs.Args()
	return cfg, fs
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bulldozer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBindFlags_Defaults(t *testing.T) {
	cfg, _ := parse(t)

	assert.Equal(t, "sha256", cfg.Algorithm)
	assert.True(t, cfg.ShowProgress)
	assert.False(t, cfg.Yes)
	assert.Empty(t, cfg.Extensions)
	assert.Empty(t, cfg.Roots)
}

func TestBindFlags_Parse(t *testing.T) {
	cfg, _ := parse(t, "-e", "jpg,png", "--ext", "gif", "-y", "--hidden",
		"--ignore", "*.log,build/", "--algorithm", "xxhash", "dir1", "dir2")

	assert.Equal(t, []string{"jpg", "png", "gif"}, cfg.Extensions)
	assert.True(t, cfg.Yes)
	assert.True(t, cfg.IgnoreHidden)
	assert.Equal(t, []string{"*.log", "build/"}, cfg.CustomIgnore)
	assert.Equal(t, "xxhash", cfg.Algorithm)
	assert.Equal(t, []string{"dir1", "dir2"}, cfg.Roots)
}

func TestLoadFile_FlagsWin(t *testing.T) {
	path := writeFile(t, `
roots: [/photos]
extensions: [jpg]
algorithm: xxhash
trash_dir: /tmp/trash
ignore_hidden: true
log_level: debug
`)
	cfg, fs := parse(t, "--algorithm", "sha256", "-e", "png")

	require.NoError(t, cfg.LoadFile(path, fs.Changed))

	assert.Equal(t, "sha256", cfg.Algorithm)
	assert.Equal(t, []string{"png"}, cfg.Extensions)
	assert.Equal(t, "/tmp/trash", cfg.TrashDir)
	assert.True(t, cfg.IgnoreHidden)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"/photos"}, cfg.Roots)
	assert.True(t, cfg.ShowProgress, "keys missing from the file keep their defaults")
}

func TestLoadFile_ArgsBeatFileRoots(t *testing.T) {
	path := writeFile(t, "roots: [/photos]\n")
	cfg, fs := parse(t, "here")

	require.NoError(t, cfg.LoadFile(path, fs.Changed))

	assert.Equal(t, []string{"here"}, cfg.Roots)
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := Default()

	err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = cfg.LoadFile(writeFile(t, "extensions: [unclosed"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, _ := parse(t, "--dry-run", "--trash", "/t")
	assert.Error(t, cfg.Validate())

	cfg, _ = parse(t, "--json", "--markdown")
	assert.Error(t, cfg.Validate())

	cfg, _ = parse(t, "-q", "-v")
	assert.Error(t, cfg.Validate())

	cfg, _ = parse(t, "--trash", "/t", "-y")
	assert.NoError(t, cfg.Validate())
}

func TestFinalize_DefaultRootAndOutputFileDisablesColor(t *testing.T) {
	cfg, _ := parse(t, "-o", "report.txt")

	cfg.Finalize()

	assert.Equal(t, []string{"."}, cfg.Roots)
	assert.False(t, cfg.UseColors)
}
