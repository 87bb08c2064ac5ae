package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

func shellFilter() Filter {
	return Filter{Extensions: []string{".sh"}}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("recurses and filters by extension", func(t *testing.T) {
		t.Parallel()
		root := writeTree(t, map[string]string{
			"a.sh":       "echo a\n",
			"b/c.sh":     "echo c\n",
			"b/d/e.sh":   "echo e\n",
			"notes.txt":  "n/a\n",
			".hidden.sh": "skipped\n",
			".git/x.sh":  "skipped\n",
		})

		files, err := Discover(context.Background(), []string{root}, shellFilter())
		require.NoError(t, err)

		rels := make([]string, len(files))
		for i, f := range files {
			rel, rErr := filepath.Rel(root, f.Path)
			require.NoError(t, rErr)
			rels[i] = filepath.ToSlash(rel)
		}
		assert.Equal(t, []string{"a.sh", "b/c.sh", "b/d/e.sh"}, rels)
	})

	t.Run("ordering is stable", func(t *testing.T) {
		t.Parallel()
		root := writeTree(t, map[string]string{
			"z.sh": "", "m/a.sh": "", "a.sh": "", "m/z.sh": "",
		})

		first, err := Discover(context.Background(), []string{root}, shellFilter())
		require.NoError(t, err)
		second, err := Discover(context.Background(), []string{root}, shellFilter())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing root contributes nothing", func(t *testing.T) {
		t.Parallel()
		files, err := Discover(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, shellFilter())
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("root that is a file is a discovery error", func(t *testing.T) {
		t.Parallel()
		root := writeTree(t, map[string]string{"a.sh": "echo a\n"})
		_, err := Discover(context.Background(), []string{filepath.Join(root, "a.sh")}, shellFilter())
		require.Error(t, err)
		var de *DiscoveryError
		require.ErrorAs(t, err, &de)
	})

	t.Run("roots keep caller order", func(t *testing.T) {
		t.Parallel()
		rootA := writeTree(t, map[string]string{"z.sh": ""})
		rootB := writeTree(t, map[string]string{"a.sh": ""})

		files, err := Discover(context.Background(), []string{rootA, rootB}, shellFilter())
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, filepath.Join(rootA, "z.sh"), files[0].Path)
		assert.Equal(t, filepath.Join(rootB, "a.sh"), files[1].Path)
	})

	t.Run("exclude beats include", func(t *testing.T) {
		t.Parallel()
		root := writeTree(t, map[string]string{"a.sh": "", "b/c.sh": ""})

		filter := Filter{
			Include:    []string{"**/*.sh"},
			Exclude:    []string{"**/*.sh"},
			Extensions: []string{".sh"},
		}
		files, err := Discover(context.Background(), []string{root}, filter)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("include cannot widen past claimed extensions", func(t *testing.T) {
		t.Parallel()
		root := writeTree(t, map[string]string{"a.sh": "", "notes.txt": ""})

		filter := Filter{
			Include:    []string{"**/*"},
			Extensions: []string{".sh"},
		}
		files, err := Discover(context.Background(), []string{root}, filter)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, filepath.Join(root, "a.sh"), files[0].Path)
	})

	t.Run("include narrows the run", func(t *testing.T) {
		t.Parallel()
		root := writeTree(t, map[string]string{"a.sh": "", "b/c.sh": ""})

		filter := Filter{
			Include:    []string{"b/*.sh"},
			Extensions: []string{".sh"},
		}
		files, err := Discover(context.Background(), []string{root}, filter)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, filepath.Join(root, "b", "c.sh"), files[0].Path)
	})
}

func TestDisplayPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.sh", displayPath(".", "a.sh"))
	assert.Equal(t, "src/a.sh", displayPath("src", "a.sh"))
	assert.Equal(t, "src/b/a.sh", displayPath("src/", "b/a.sh"))
}

func TestFilterValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Filter{Include: []string{"**/*.sh"}}.Validate())
	require.Error(t, Filter{Exclude: []string{"["}}.Validate())
}
