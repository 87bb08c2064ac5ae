package pipeline

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Filter decides which discovered files take part in a run. A file takes
// part iff its extension appears in Extensions, it matches an include
// pattern (no include patterns admit every claimed extension), and it
// matches no exclude pattern. Include globs narrow the run; they never admit
// files no formatter claims. Dot files and dot directories are always
// skipped.
type Filter struct {
	Include    []string
	Exclude    []string
	Extensions []string
}

// Validate checks every glob pattern for syntax errors.
func (f Filter) Validate() error {
	for _, p := range append(append([]string{}, f.Include...), f.Exclude...) {
		if err := validatePattern(p); err != nil {
			return err
		}
	}
	return nil
}

// Match reports whether the slash-separated root-relative path takes part in
// the run.
func (f Filter) Match(rel string) bool {
	ext := strings.ToLower(filepath.Ext(rel))
	claimed := false
	for _, e := range f.Extensions {
		if ext == e {
			claimed = true
			break
		}
	}
	if !claimed {
		return false
	}

	if len(f.Include) > 0 {
		included := false
		for _, p := range f.Include {
			if matchGlob(p, rel) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}

	for _, p := range f.Exclude {
		if matchGlob(p, rel) {
			return false
		}
	}
	return true
}

// Discover enumerates the files under each root that pass the filter. Roots
// that do not exist contribute nothing; a root that exists but cannot be
// scanned is a fatal *DiscoveryError. Roots are scanned concurrently but the
// result is deterministic: files are sorted lexicographically by relative
// path within each root, and roots keep their caller-given order.
func Discover(ctx context.Context, roots []string, filter Filter) ([]SourceFile, error) {
	perRoot := make([][]SourceFile, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			files, err := discoverRoot(ctx, root, filter)
			if err != nil {
				return err
			}
			perRoot[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []SourceFile
	for _, files := range perRoot {
		all = append(all, files...)
	}
	return all, nil
}

func discoverRoot(ctx context.Context, root string, filter Filter) ([]SourceFile, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &DiscoveryError{Root: root, Wrapped: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Root: root, Wrapped: fs.ErrInvalid}
	}

	var files []SourceFile
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		rel, rErr := filepath.Rel(root, p)
		if rErr != nil {
			return rErr
		}
		rel = filepath.ToSlash(rel)
		if !filter.Match(rel) {
			return nil
		}

		abs, aErr := filepath.Abs(p)
		if aErr != nil {
			return aErr
		}
		files = append(files, SourceFile{Path: abs, Display: displayPath(root, rel)})
		return nil
	})
	if walkErr != nil {
		if ctx.Err() != nil {
			return nil, walkErr
		}
		return nil, &DiscoveryError{Root: root, Wrapped: walkErr}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Display < files[j].Display
	})
	return files, nil
}

// displayPath joins the root as the caller wrote it with the root-relative
// path, so report lines read the way the operator addressed the tree.
func displayPath(root, rel string) string {
	cleaned := filepath.ToSlash(filepath.Clean(root))
	if cleaned == "." {
		return rel
	}
	return cleaned + "/" + rel
}
