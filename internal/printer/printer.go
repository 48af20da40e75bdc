// Package printer renders the duplicate report
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/bethropolis/bulldozer/internal/bulldozer"
)

// Printer writes duplicate groups to the configured output as text, JSON or Markdown
type Printer struct {
	output         io.Writer
	count          int64
	useColors      bool
	jsonOutput     bool
	jsonStarted    bool
	markdownOutput bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// WithMarkdown enables Markdown output mode
func (p *Printer) WithMarkdown(enabled bool) *Printer {
	p.markdownOutput = enabled
	return p
}

// JSONGroupEntry represents one duplicate group in JSON output
type JSONGroupEntry struct {
	Digest string   `json:"digest"`
	Keep   string   `json:"keep"`
	Remove []string `json:"remove"`
	Paths  []string `json:"paths"`
}

// PrintGroups prints every group in ascending digest order, paths sorted
// with the survivor first
func (p *Printer) PrintGroups(groups bulldozer.DigestGroups) {
	for _, digest := range groups.Digests() {
		p.PrintGroup(digest, groups.Sorted(digest))
	}
}

// PrintGroup prints one group; paths[0] is the copy that is kept
func (p *Printer) PrintGroup(digest string, paths []string) {
	if len(paths) == 0 {
		return
	}
	p.count++

	switch {
	case p.jsonOutput:
		if !p.jsonStarted {
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}

		entry := JSONGroupEntry{
			Digest: digest,
			Keep:   paths[0],
			Remove: append([]string{}, paths[1:]...),
			Paths:  paths,
		}
		jsonData, err := json.MarshalIndent(entry, "  ", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Fprintf(p.output, "  %s", jsonData)

	case p.markdownOutput:
		fmt.Fprintf(p.output, "## `%s`\n\n", digest)
		fmt.Fprintf(p.output, "- %s (keep)\n", paths[0])
		for _, path := range paths[1:] {
			fmt.Fprintf(p.output, "- %s\n", path)
		}
		fmt.Fprintln(p.output)

	default:
		header := digest + ":"
		keep := "(keep)"
		if p.useColors {
			header = color.New(color.Bold, color.FgCyan).Sprint(header)
			keep = color.GreenString(keep)
		}
		fmt.Fprintln(p.output, header)
		fmt.Fprintf(p.output, "%s %s\n", paths[0], keep)
		for _, path := range paths[1:] {
			fmt.Fprintln(p.output, path)
		}
		fmt.Fprintln(p.output)
	}
}

// Finalize completes any pending operations (like closing JSON array)
func (p *Printer) Finalize() {
	if !p.jsonOutput {
		return
	}
	if p.jsonStarted {
		fmt.Fprint(p.output, "\n]\n")
	} else {
		fmt.Fprint(p.output, "[]\n")
	}
}

// GetCount returns the number of groups printed
func (p *Printer) GetCount() int64 {
	return p.count
}
