package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/bulldozer/internal/bulldozer"
)

func groups() bulldozer.DigestGroups {
	return bulldozer.DigestGroups{
		"ffff": {"/b/2", "/a/1"},
		"0000": {"/z", "/y", "/x"},
	}
}

func TestPrintGroups_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)

	p.PrintGroups(groups())
	p.Finalize()

	want := "0000:\n/x (keep)\n/y\n/z\n\n" +
		"ffff:\n/a/1 (keep)\n/b/2\n\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(2), p.GetCount())
}

func TestPrintGroups_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)

	p.PrintGroups(groups())
	p.Finalize()

	var entries []JSONGroupEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "0000", entries[0].Digest)
	assert.Equal(t, "/x", entries[0].Keep)
	assert.Equal(t, []string{"/y", "/z"}, entries[0].Remove)
	assert.Equal(t, []string{"/a/1", "/b/2"}, entries[1].Paths)
}

func TestPrintGroups_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)

	p.PrintGroups(bulldozer.DigestGroups{})
	p.Finalize()

	var entries []JSONGroupEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestPrintGroups_Markdown(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithMarkdown(true)

	p.PrintGroup("abcd", []string{"/k", "/r"})
	p.Finalize()

	assert.Equal(t, "## `abcd`\n\n- /k (keep)\n- /r\n\n", buf.String())
}

func TestPrintGroup_IgnoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf)

	p.PrintGroup("x", nil)

	assert.Empty(t, buf.String())
	assert.Zero(t, p.GetCount())
}
