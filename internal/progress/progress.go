// Package progress shows which file is being hashed
package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

const nameWidth = 40

// Spinner is a utils.Reporter drawing an open-ended progress spinner with
// the current file name and a running count
type Spinner struct {
	bar   *progressbar.ProgressBar
	count int64
}

// NewSpinner draws on w, normally stderr
func NewSpinner(w io.Writer) *Spinner {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Hashing"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionClearOnFinish(),
	)
	return &Spinner{bar: bar}
}

// Report moves the spinner on and shows item
func (s *Spinner) Report(item string) {
	s.count++
	s.bar.Describe("Hashing " + Truncate(item, nameWidth))
	_ = s.bar.Add(1)
}

// Count is the number of reports so far
func (s *Spinner) Count() int64 {
	return s.count
}

// Finish clears the spinner line
func (s *Spinner) Finish() {
	_ = s.bar.Finish()
}

// Truncate shortens name to at most width characters, keeping the end
func Truncate(name string, width int) string {
	r := []rune(name)
	if len(r) <= width || width <= 3 {
		return name
	}
	return "..." + string(r[len(r)-(width-3):])
}
