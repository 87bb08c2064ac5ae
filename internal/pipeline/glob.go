package pipeline

import (
	"path"
	"strings"
)

// matchGlob reports whether the slash-separated relative path rel matches the
// pattern. A pattern without a slash matches against the base name at any
// depth; a pattern with slashes matches the whole relative path, with "**"
// standing for any number of path segments (including none). Individual
// segments use path.Match syntax. A malformed pattern matches nothing;
// patterns are validated up front by validatePattern.
func matchGlob(pattern, rel string) bool {
	if !strings.Contains(pattern, "/") {
		ok, err := path.Match(pattern, path.Base(rel))
		return err == nil && ok
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(rel, "/"))
}

func matchSegments(pat, segs []string) bool {
	if len(pat) == 0 {
		return len(segs) == 0
	}
	if pat[0] == "**" {
		// Zero or more segments.
		for i := 0; i <= len(segs); i++ {
			if matchSegments(pat[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	ok, err := path.Match(pat[0], segs[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pat[1:], segs[1:])
}

// validatePattern checks a glob pattern for syntax errors.
func validatePattern(pattern string) error {
	for _, seg := range strings.Split(pattern, "/") {
		if seg == "**" {
			continue
		}
		if _, err := path.Match(seg, "x"); err != nil {
			return &InvalidPatternError{Pattern: pattern}
		}
	}
	return nil
}
