package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	var f formatValue

	require.NoError(t, f.Set("text"))
	assert.Equal(t, "text", f.String())

	require.NoError(t, f.Set("json"))
	assert.Equal(t, "json", f.String())

	require.Error(t, f.Set("yaml"))
	assert.Equal(t, "<format>", f.Type())
}
