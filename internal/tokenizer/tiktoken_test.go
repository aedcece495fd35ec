package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingForModel(t *testing.T) {
	assert.Equal(t, "o200k_base", EncodingForModel("gpt-4o", ""))
	assert.Equal(t, "o200k_base", EncodingForModel("gpt-4o-mini", ""))
	assert.Equal(t, "cl100k_base", EncodingForModel("gpt-4", ""))
	assert.Equal(t, "cl100k_base", EncodingForModel("gpt-3.5-turbo", ""))
}

func TestEncodingForModelPrefix(t *testing.T) {
	// Longest prefix wins: a dated gpt-4o-mini snapshot must not resolve
	// through the shorter gpt-4 entry.
	assert.Equal(t, "o200k_base", EncodingForModel("gpt-4o-mini-2024-07-18", ""))
	assert.Equal(t, "o200k_base", EncodingForModel("gpt-4o-2024-08-06", ""))
	assert.Equal(t, "cl100k_base", EncodingForModel("gpt-4-turbo-preview", ""))
	assert.Equal(t, "cl100k_base", EncodingForModel("gpt-3.5-turbo-0125", ""))
}

func TestEncodingForModelFallback(t *testing.T) {
	assert.Equal(t, "cl100k_base", EncodingForModel("claude-3-haiku", ""))
	assert.Equal(t, "cl100k_base", EncodingForModel("", ""))
	assert.Equal(t, "o200k_base", EncodingForModel("unknown-model", "o200k_base"))
}

func TestForModel(t *testing.T) {
	tok := ForModel("gpt-4o-mini", "")
	assert.Equal(t, "o200k_base", tok.Encoding())
	assert.Equal(t, "tiktoken[o200k_base]", tok.Name())

	tok = ForModel("not-a-real-model", "")
	assert.Equal(t, "cl100k_base", tok.Encoding())
}
