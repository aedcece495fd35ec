// Package tokenizer provides subword token counting keyed by model name,
// backed by tiktoken with a silent fallback encoding for unknown models.
package tokenizer

// Counter counts the subword tokens in a piece of text. The analyzer only
// depends on this interface so tests can plug in a deterministic stub.
type Counter interface {
	Count(text string) (int, error)
}
