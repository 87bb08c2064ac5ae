package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLFormat(t *testing.T) {
	t.Parallel()

	f := NewYAML(0)

	t.Run("normalises spacing", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format("test.yml", []byte("a: 1\nb:    2\n"))
		require.NoError(t, err)
		assert.Equal(t, "a: 1\nb: 2\n", string(got))
	})

	t.Run("already canonical", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format("test.yml", []byte("a: 1\nb: 2\n"))
		require.NoError(t, err)
		assert.Equal(t, "a: 1\nb: 2\n", string(got))
	})

	t.Run("preserves comments", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format("test.yml", []byte("# top\na: 1\n"))
		require.NoError(t, err)
		assert.Contains(t, string(got), "# top")
		assert.Contains(t, string(got), "a: 1")
	})

	t.Run("multi-document stream keeps every document", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format("multi.yml", []byte("a: 1\n---\nb:    2\n"))
		require.NoError(t, err)
		assert.Equal(t, "a: 1\n---\nb: 2\n", string(got))
	})

	t.Run("multi-document stream is idempotent", func(t *testing.T) {
		t.Parallel()
		once, err := f.Format("multi.yml", []byte("a: 1\n---\nb: 2\n---\nc: [3]\n"))
		require.NoError(t, err)
		twice, err := f.Format("multi.yml", once)
		require.NoError(t, err)
		assert.Equal(t, string(once), string(twice))
	})

	t.Run("empty document unchanged", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format("test.yml", []byte(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		once, err := f.Format("test.yml", []byte("list:\n    - a\n    - b\nkey:   value\n"))
		require.NoError(t, err)
		twice, err := f.Format("test.yml", once)
		require.NoError(t, err)
		assert.Equal(t, string(once), string(twice))
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format("bad.yml", []byte("a: [1\n"))
		require.Error(t, err)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.NotEmpty(t, pe.Message)
	})
}
