package walker

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExtFilter selects files by extension. The zero value accepts every file;
// a filter built by OnlyExtensions accepts only files whose extension is in
// its set, compared case-insensitively.
type ExtFilter struct {
	allowed map[string]struct{}
}

// AllExtensions returns the filter that accepts every file
func AllExtensions() ExtFilter {
	return ExtFilter{}
}

// OnlyExtensions returns a filter restricted to exts. Entries may carry a
// leading dot. Called with no usable entry it accepts nothing.
func OnlyExtensions(exts ...string) ExtFilter {
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		if clean := normalizeExt(ext); clean != "" {
			allowed[clean] = struct{}{}
		}
	}
	return ExtFilter{allowed: allowed}
}

// ParseExtensions builds a filter from user input such as "jpg, .PNG,gif".
// Empty input yields AllExtensions.
func ParseExtensions(list []string) ExtFilter {
	var exts []string
	for _, item := range list {
		for _, ext := range strings.Split(item, ",") {
			if clean := normalizeExt(ext); clean != "" {
				exts = append(exts, clean)
			}
		}
	}
	if len(exts) == 0 {
		return AllExtensions()
	}
	return OnlyExtensions(exts...)
}

// IsAll reports whether the filter accepts every file
func (f ExtFilter) IsAll() bool {
	return f.allowed == nil
}

// Allows reports whether a file with the given name passes the filter
func (f ExtFilter) Allows(name string) bool {
	if f.allowed == nil {
		return true
	}
	ext := Extension(name)
	if ext == "" {
		return false
	}
	_, ok := f.allowed[strings.ToLower(ext)]
	return ok
}

// Extensions returns the allowed extensions in sorted order, nil for AllExtensions
func (f ExtFilter) Extensions() []string {
	if f.allowed == nil {
		return nil
	}
	exts := make([]string, 0, len(f.allowed))
	for ext := range f.allowed {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extension returns the extension of name without the dot. Dot-files such
// as ".bashrc" have no extension.
func Extension(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
