package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnore_NothingByDefault(t *testing.T) {
	m, err := New(t.TempDir())
	require.NoError(t, err)

	assert.False(t, m.ShouldIgnore(".hidden", false))
	assert.False(t, m.ShouldIgnore(".git", true))
	assert.False(t, m.ShouldIgnore("a/b/c.txt", false))
}

func TestShouldIgnore_Hidden(t *testing.T) {
	m, err := New(t.TempDir(), WithHiddenIgnore(true))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore(".env", false))
	assert.True(t, m.ShouldIgnore(".cache", true))
	assert.True(t, m.ShouldIgnore(filepath.Join(".cache", "x.bin"), false))
	assert.False(t, m.ShouldIgnore(filepath.Join("docs", "readme.md"), false))
}

func TestShouldIgnore_GitDir(t *testing.T) {
	m, err := New(t.TempDir(), WithGitIgnore(true))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore(".git", true))
	assert.True(t, m.ShouldIgnore(filepath.Join("sub", ".git", "HEAD"), false))
	assert.False(t, m.ShouldIgnore(".gitkeep", false))
	// a plain file named .git (worktree pointer) is not a git directory
	assert.False(t, m.ShouldIgnore(".git", false))
}

func TestShouldIgnore_CustomRules(t *testing.T) {
	m, err := New(t.TempDir(), WithCustomRules([]string{"*.log", "build/", "!keep.log"}))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("server.log", false))
	assert.True(t, m.ShouldIgnore(filepath.Join("nested", "app.log"), false))
	assert.True(t, m.ShouldIgnore("build", true))
	assert.False(t, m.ShouldIgnore("keep.log", false))
	assert.False(t, m.ShouldIgnore("main.go", false))
}

func TestShouldIgnore_GitignoreFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.tmp\n"), 0o644))

	m, err := New(root, WithGitignoreFiles(true))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("scratch.tmp", false))
	assert.False(t, m.ShouldIgnore("notes.txt", false))
}

func TestShouldIgnore_GitignoreFilesThroughFS(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/data/.gitignore", []byte("*.tmp\nbuild/\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/data/sub/.gitignore", []byte("!keep.tmp\n*.bak\n"), 0o644))

	m, err := New("/data", WithGitignoreFiles(true), WithFS(fs))
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("scratch.tmp", false))
	assert.True(t, m.ShouldIgnore("build", true))
	assert.True(t, m.ShouldIgnore(filepath.Join("sub", "other.tmp"), false))
	assert.True(t, m.ShouldIgnore(filepath.Join("sub", "old.bak"), false))
	assert.False(t, m.ShouldIgnore(filepath.Join("sub", "keep.tmp"), false))
	assert.False(t, m.ShouldIgnore("old.bak", false))
	assert.False(t, m.ShouldIgnore("notes.txt", false))
}

func TestShouldIgnore_GitignoreFilesNeverReadFromHostWithFS(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.txt\n"), 0o644))

	m, err := New(root, WithGitignoreFiles(true), WithFS(memfs.New()))
	require.NoError(t, err)

	assert.False(t, m.ShouldIgnore("notes.txt", false))
}

func TestShouldIgnore_DisabledAndNil(t *testing.T) {
	m := CreateDisabledMatcher()
	assert.False(t, m.ShouldIgnore(".hidden", false))

	assert.False(t, IsIgnored(nil, "anything", false))
}

func TestNewFromConfig(t *testing.T) {
	root := t.TempDir()
	cfg := Config{RootDir: root, IgnoreHidden: true, CustomRules: []string{"*.bak"}}
	assert.True(t, cfg.Active())
	assert.False(t, Config{RootDir: root}.Active())

	m, err := NewFromConfig(cfg)
	require.NoError(t, err)

	abs, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, abs, m.RootDir())
	assert.True(t, m.ShouldIgnore("old.bak", false))
	assert.True(t, m.ShouldIgnore(".x", false))
}
