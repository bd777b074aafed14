package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsAreEmbedded(t *testing.T) {
	for _, name := range []string{IconApp, IconRunning, IconPaused} {
		icon, err := Icon(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, icon.Name())
		assert.Contains(t, string(icon.Content()), "<svg")
	}
}

func TestIconIsCached(t *testing.T) {
	first := MustIcon(IconApp)
	second := MustIcon(IconApp)

	assert.Same(t, first, second)
}

func TestMissingIcon(t *testing.T) {
	_, err := Icon("nope.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("nope.svg") })
}
