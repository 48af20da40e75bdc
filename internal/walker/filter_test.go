package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"a.txt":           "txt",
		"archive.tar.GZ":  "GZ",
		"/x/y/photo.jpeg": "jpeg",
		"Makefile":        "",
		".bashrc":         "",
		".config.yaml":    "yaml",
		"trailing.":       "",
		"dir.d/noext":     "",
	}
	for name, want := range cases {
		assert.Equal(t, want, Extension(name), "name %q", name)
	}
}

func TestExtFilter_All(t *testing.T) {
	f := AllExtensions()
	assert.True(t, f.IsAll())
	assert.True(t, f.Allows("anything.bin"))
	assert.True(t, f.Allows("Makefile"))
	assert.Nil(t, f.Extensions())
}

func TestExtFilter_Only(t *testing.T) {
	f := OnlyExtensions(".JPG", "png", " gif ")
	assert.False(t, f.IsAll())
	assert.Equal(t, []string{"gif", "jpg", "png"}, f.Extensions())

	assert.True(t, f.Allows("a.jpg"))
	assert.True(t, f.Allows("b.JpG"))
	assert.True(t, f.Allows("c.PNG"))
	assert.False(t, f.Allows("d.jpeg"))
	assert.False(t, f.Allows("jpg"))
	assert.False(t, f.Allows(".png"))
}

func TestExtFilter_OnlyNothing(t *testing.T) {
	f := OnlyExtensions()
	assert.False(t, f.IsAll())
	assert.False(t, f.Allows("a.txt"))
}

func TestParseExtensions(t *testing.T) {
	assert.True(t, ParseExtensions(nil).IsAll())
	assert.True(t, ParseExtensions([]string{"", " , "}).IsAll())

	f := ParseExtensions([]string{"go,.MD", "txt"})
	assert.Equal(t, []string{"go", "md", "txt"}, f.Extensions())
}
