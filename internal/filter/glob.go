// Package filter provides glob-pattern filtering for RTE module names,
// used by the generate command's --exclude/--include flags and the tool
// config's exclude/include lists.
package filter

import (
	"path/filepath"
	"strings"
)

// GlobFilter filters module names based on glob patterns.
type GlobFilter struct {
	// ExcludePatterns are patterns to exclude (e.g., "legacy-*")
	ExcludePatterns []string
	// IncludePatterns are patterns to include (if empty, all are included)
	IncludePatterns []string
}

// NewGlobFilter creates a new filter with the given patterns.
func NewGlobFilter(exclude, include []string) *GlobFilter {
	return &GlobFilter{
		ExcludePatterns: exclude,
		IncludePatterns: include,
	}
}

// Match checks if a module name matches the filter criteria. Returns true
// if the module should be included.
func (f *GlobFilter) Match(moduleName string) bool {
	normalizedName := filepath.ToSlash(moduleName)

	for _, pattern := range f.ExcludePatterns {
		normalizedPattern := filepath.ToSlash(pattern)
		if matchPattern(normalizedPattern, normalizedName) || matchGlob(normalizedPattern, normalizedName) {
			return false
		}
	}

	if len(f.IncludePatterns) == 0 {
		return true
	}

	for _, pattern := range f.IncludePatterns {
		normalizedPattern := filepath.ToSlash(pattern)
		if matchPattern(normalizedPattern, normalizedName) || matchGlob(normalizedPattern, normalizedName) {
			return true
		}
	}

	return false
}

// FilterNames returns module names that match the filter criteria.
func (f *GlobFilter) FilterNames(names []string) []string {
	var result []string
	for _, name := range names {
		if f.Match(name) {
			result = append(result, name)
		}
	}
	return result
}

// matchPattern wraps filepath.Match and returns false on invalid patterns.
func matchPattern(pattern, name string) bool {
	matched, err := filepath.Match(pattern, name)
	if err != nil {
		return false
	}
	return matched
}

// matchGlob provides extended glob matching with ** support.
func matchGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		return matchDoubleStarGlob(pattern, path)
	}
	return matchPattern(pattern, path)
}

// matchDoubleStarGlob handles ** patterns that match any number of path
// segments.
func matchDoubleStarGlob(pattern, path string) bool {
	parts := strings.Split(pattern, "**")

	if len(parts) == 1 {
		return matchPattern(pattern, path)
	}

	prefix := parts[0]
	if prefix != "" {
		prefix = strings.TrimSuffix(prefix, "/")
		if !strings.HasPrefix(path, prefix) && !matchPrefix(prefix, path) {
			return false
		}
		path = strings.TrimPrefix(path, prefix)
		path = strings.TrimPrefix(path, "/")
	}

	suffix := parts[len(parts)-1]
	if suffix != "" {
		suffix = strings.TrimPrefix(suffix, "/")
		if !strings.HasSuffix(path, suffix) && !matchSuffix(suffix, path) {
			return false
		}
	}

	if len(parts) > 2 {
		for i := 1; i < len(parts)-1; i++ {
			middle := strings.Trim(parts[i], "/")
			if middle != "" && !strings.Contains(path, middle) {
				return false
			}
		}
	}

	return true
}

// matchPrefix matches a glob prefix against a path.
func matchPrefix(prefix, path string) bool {
	prefixParts := strings.Split(prefix, "/")
	pathParts := strings.Split(path, "/")

	if len(prefixParts) > len(pathParts) {
		return false
	}

	for i, pp := range prefixParts {
		if !matchPattern(pp, pathParts[i]) {
			return false
		}
	}

	return true
}

// matchSuffix matches a glob suffix against a path.
func matchSuffix(suffix, path string) bool {
	suffixParts := strings.Split(suffix, "/")
	pathParts := strings.Split(path, "/")

	if len(suffixParts) > len(pathParts) {
		return false
	}

	offset := len(pathParts) - len(suffixParts)
	for i, sp := range suffixParts {
		if !matchPattern(sp, pathParts[offset+i]) {
			return false
		}
	}

	return true
}
