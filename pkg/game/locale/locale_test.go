package locale

import (
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrench(t *testing.T) {
	require.NoError(t, Load("fr_FR.UTF-8"))
	t.Cleanup(func() { _ = Load("en") })

	assert.Equal(t, "Appuyez sur E pour entrer", gotext.Get("Press E to enter"))
	assert.Equal(t, "Ava — appuyez sur E", gotext.Get("%s — press E", "Ava"))
	assert.Equal(t, "untranslated", gotext.Get("untranslated"))
}

func TestLoadEnglishUsesMessageIDs(t *testing.T) {
	require.NoError(t, Load(""))

	assert.Equal(t, "Press E to enter", gotext.Get("Press E to enter"))
	assert.Equal(t, "Talk to all 3 • Correct: 1/3", gotext.Get("Talk to all %d • Correct: %d/%d", 3, 1, 3))
}

func TestLoadUnknownLanguage(t *testing.T) {
	assert.Error(t, Load("xx"))
}

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"en", "fr"}, Available())
}
