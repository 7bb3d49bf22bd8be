package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo_LoadsAndCaches(t *testing.T) {
	first, err := Logo(LogoColor)
	require.NoError(t, err)
	assert.Contains(t, string(first.Content()), "<svg")

	second := MustLogo(LogoColor)
	assert.Same(t, first, second)
}

func TestLogo_Missing(t *testing.T) {
	_, err := Logo("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLogo("missing.svg") })
}
