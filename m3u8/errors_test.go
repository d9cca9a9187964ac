package m3u8

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openwurl/openm3u8/logging"
)

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError(ErrCodeInvalidFormat, "bad playlist", nil)
	assert.Equal(t, "bad playlist", err.Error())
	assert.Nil(t, err.Unwrap())

	cause := errors.New("underlying")
	wrapped := NewParseError(ErrCodeReadFailed, "read failed", cause)
	assert.Equal(t, "read failed: underlying", wrapped.Error())
	assert.Equal(t, cause, wrapped.Unwrap())
	assert.True(t, errors.Is(wrapped, cause))
}

func TestParseErrorFields(t *testing.T) {
	err := NewParseErrorWithFields(ErrCodeInvalidFormat, "bad playlist", nil,
		logging.Fields{"lines": 12})

	assert.Equal(t, ErrCodeInvalidFormat, err.Code)
	assert.Equal(t, 12, err.Fields["lines"])
}
