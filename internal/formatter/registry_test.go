package formatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("empty language list enables everything", func(t *testing.T) {
		t.Parallel()
		r, err := Build(nil, 0, "")
		require.NoError(t, err)
		assert.Len(t, r.Formatters(), 4)
		assert.Contains(t, r.Extensions(), ".sh")
		assert.Contains(t, r.Extensions(), ".json")
		assert.Contains(t, r.Extensions(), ".yaml")
		assert.Contains(t, r.Extensions(), ".go")
	})

	t.Run("restricted language list", func(t *testing.T) {
		t.Parallel()
		r, err := Build([]string{"shell"}, 0, "")
		require.NoError(t, err)
		assert.Len(t, r.Formatters(), 1)
		assert.Equal(t, []string{".bash", ".sh"}, r.Extensions())
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		_, err := Build([]string{"fortran"}, 0, "")
		require.Error(t, err)
		var ue *UnknownLanguageError
		assert.True(t, errors.As(err, &ue))
	})

	t.Run("bad dialect surfaces from shell", func(t *testing.T) {
		t.Parallel()
		_, err := Build([]string{"shell"}, 0, "tcsh")
		require.Error(t, err)
	})
}

func TestRegistryForPath(t *testing.T) {
	t.Parallel()

	r, err := Build(nil, 0, "")
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"scripts/run.sh", "shell"},
		{"scripts/run.BASH", "shell"},
		{"data/config.json", "json"},
		{"deploy.yaml", "yaml"},
		{"deploy.yml", "yaml"},
		{"main.go", "go"},
	}
	for _, tt := range tests {
		fm := r.ForPath(tt.path)
		require.NotNil(t, fm, tt.path)
		assert.Equal(t, tt.want, fm.Name(), tt.path)
	}

	assert.Nil(t, r.ForPath("README.md"))
	assert.Nil(t, r.ForPath("Makefile"))
}

func TestNewRegistryDuplicateExtension(t *testing.T) {
	t.Parallel()

	sh1, err := NewShell(0, "")
	require.NoError(t, err)
	sh2, err := NewShell(2, "")
	require.NoError(t, err)

	_, err = NewRegistry(sh1, sh2)
	require.Error(t, err)
}
