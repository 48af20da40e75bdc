// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/bulldozer/internal/bulldozer"
	"github.com/bethropolis/bulldozer/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a scan operation
func DisplayResults(logger Logger, res *bulldozer.Result, quiet bool) {
	if quiet || res == nil {
		return
	}
	groups := len(res.Groups)
	removable := res.Groups.PathCount() - groups

	logger.Info("Hashed %d files (%s) with %s in %d directories.",
		res.Stats.VisitedFiles, FormatBytes(res.BytesHashed), res.Algorithm, res.Stats.TotalDirs)
	if res.Stats.SkippedFiles+res.Stats.SkippedDirs > 0 {
		logger.Info("Skipped %d files and %d directories.", res.Stats.SkippedFiles, res.Stats.SkippedDirs)
	}
	logger.Info("Found %d duplicate groups, %d removable files.", groups, removable)
	logger.Info("Scan complete in %v.", res.Duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) > 0 {
		items := append([]walker.SkippedItem(nil), skippedItems...)
		sort.Slice(items, func(i, j int) bool {
			return items[i].Path < items[j].Path
		})
		for _, item := range items {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			fmt.Fprintf(output, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
		}
	} else {
		infoLog("No items were skipped.")
	}
	infoLog("--- End Skipped Items ---")
}

// FormatBytes renders a byte count with binary units
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
