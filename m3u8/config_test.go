package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.False(t, config.StrictMode)
	assert.False(t, config.CaptureUnknownTags)
	assert.NotNil(t, config.CustomTagHandlers)
	assert.Empty(t, config.CustomTagHandlers)
}

func TestConfigFromMap(t *testing.T) {
	t.Run("nil map returns defaults", func(t *testing.T) {
		config := ConfigFromMap(nil)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("overrides applied", func(t *testing.T) {
		config := ConfigFromMap(map[string]any{
			"strict_mode":          true,
			"capture_unknown_tags": true,
			"custom_tag_handlers": map[string]string{
				"#EXT-X-CUSTOM": "custom handler",
			},
		})

		assert.True(t, config.StrictMode)
		assert.True(t, config.CaptureUnknownTags)
		assert.Equal(t, "custom handler", config.CustomTagHandlers["#EXT-X-CUSTOM"])
	})

	t.Run("wrong types ignored", func(t *testing.T) {
		config := ConfigFromMap(map[string]any{
			"strict_mode": "yes",
		})
		assert.False(t, config.StrictMode)
	})
}

func TestConfigFromYAML(t *testing.T) {
	config, err := ConfigFromYAML([]byte(`
strict_mode: true
capture_unknown_tags: true
custom_tag_handlers:
  "#EXT-X-CUSTOM": custom handler
`))

	require.NoError(t, err)
	assert.True(t, config.StrictMode)
	assert.True(t, config.CaptureUnknownTags)
	assert.Equal(t, "custom handler", config.CustomTagHandlers["#EXT-X-CUSTOM"])
}

func TestConfigFromYAMLInvalid(t *testing.T) {
	config, err := ConfigFromYAML([]byte("strict_mode: [not a bool"))

	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestNewConfigurableParserNilConfig(t *testing.T) {
	parser := NewConfigurableParser(nil)

	assert.NotNil(t, parser)
	assert.Equal(t, DefaultConfig(), parser.config)
}
