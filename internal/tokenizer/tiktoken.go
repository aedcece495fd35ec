package tokenizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// FallbackEncoding is used when a model name is not recognized.
const FallbackEncoding = "cl100k_base"

// modelEncodings maps model names to their tiktoken encoding.
var modelEncodings = map[string]string{
	"gpt-4o":                 "o200k_base",
	"gpt-4o-mini":            "o200k_base",
	"gpt-4-turbo":            "cl100k_base",
	"gpt-4":                  "cl100k_base",
	"gpt-3.5-turbo":          "cl100k_base",
	"text-embedding-3-large": "cl100k_base",
	"text-embedding-3-small": "cl100k_base",
}

// EncodingForModel resolves the encoding for a model name using exact then
// longest-prefix matching. Unknown models resolve to fallback silently; an
// empty fallback means FallbackEncoding.
func EncodingForModel(model, fallback string) string {
	if enc, ok := modelEncodings[model]; ok {
		return enc
	}

	best := ""
	enc := ""
	for prefix, e := range modelEncodings {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best = prefix
			enc = e
		}
	}
	if best != "" {
		return enc
	}

	if fallback == "" {
		return FallbackEncoding
	}
	return fallback
}

// Tiktoken counts tokens with a tiktoken encoding resolved from a model
// name. The encoding is loaded lazily on first use since tiktoken may
// fetch vocabulary data.
type Tiktoken struct {
	model    string
	encoding string

	once    sync.Once
	enc     *tiktoken.Tiktoken
	initErr error
}

// ForModel returns a token counter for the given model name.
func ForModel(model, fallback string) *Tiktoken {
	return &Tiktoken{
		model:    model,
		encoding: EncodingForModel(model, fallback),
	}
}

func (t *Tiktoken) init() error {
	t.once.Do(func() {
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.initErr = fmt.Errorf("tokenizer: load encoding %s: %w", t.encoding, err)
			return
		}
		t.enc = enc
	})
	return t.initErr
}

// Count returns the number of tokens the encoding produces for text.
func (t *Tiktoken) Count(text string) (int, error) {
	if err := t.init(); err != nil {
		return 0, err
	}
	return len(t.enc.Encode(text, nil, nil)), nil
}

// Encoding returns the resolved encoding name.
func (t *Tiktoken) Encoding() string {
	return t.encoding
}

// Name identifies the counter, e.g. "tiktoken[cl100k_base]".
func (t *Tiktoken) Name() string {
	return fmt.Sprintf("tiktoken[%s]", t.encoding)
}
