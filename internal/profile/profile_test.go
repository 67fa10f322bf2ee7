package profile

import (
	"testing"

	"github.com/pthm/twlint/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"google", "relaxed", "strict"}, Available())
}

func TestLoad(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, p.Name)

	_, err = Load("chicago")
	assert.ErrorContains(t, err, "unknown profile: chicago")
}

func TestProfileConfig(t *testing.T) {
	tests := []struct {
		name         string
		longSentence int
		disabled     []string
	}{
		{name: "google", longSentence: 25},
		{name: "strict", longSentence: 20},
		{name: "relaxed", longSentence: 35, disabled: []string{"pronouns", "ambiguous", "bullets", "imperative", "we-vs-you"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(tt.name)
			require.NoError(t, err)
			assert.NotEmpty(t, p.Description)

			cfg := p.Config()
			assert.Equal(t, tt.longSentence, cfg.Thresholds.LongSentence)
			for _, name := range tt.disabled {
				assert.False(t, cfg.Enabled(name), name)
			}
			assert.True(t, cfg.Enabled("passive-voice"))
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestApply_DoesNotMutateBase(t *testing.T) {
	p, err := Load("relaxed")
	require.NoError(t, err)

	base := config.Default()
	cfg := p.Apply(base)

	assert.Empty(t, base.Checks)
	assert.Equal(t, config.DefaultLongSentence, base.Thresholds.LongSentence)
	assert.False(t, cfg.Enabled("pronouns"))
}
