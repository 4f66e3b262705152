package normalize

import (
	"context"
	"strings"

	"github.com/tobidsn/anticms-schemagen/pkg/content"
)

// MarkupAdapter routes design-tool markup exports through the markup scanner.
type MarkupAdapter struct{}

func (MarkupAdapter) Name() string { return "markup" }

// Detect accepts payloads that open with a tag.
func (MarkupAdapter) Detect(raw []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(raw)), "<")
}

func (MarkupAdapter) Normalize(ctx context.Context, raw []byte, opts content.NormalizeOptions) (content.Normalized, error) {
	if err := ctx.Err(); err != nil {
		return content.Normalized{}, err
	}
	return Markup(string(raw), opts)
}

// DataAdapter routes raw JSON payloads through the structured-data walker.
type DataAdapter struct{}

func (DataAdapter) Name() string { return "data" }

// Detect accepts payloads that open with a JSON object.
func (DataAdapter) Detect(raw []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(raw)), "{")
}

func (DataAdapter) Normalize(ctx context.Context, raw []byte, _ content.NormalizeOptions) (content.Normalized, error) {
	if err := ctx.Err(); err != nil {
		return content.Normalized{}, err
	}
	return DataRaw(raw)
}

// PromptAdapter handles free text. Detect always reports true, so it must be
// consulted last when routing an untyped payload.
type PromptAdapter struct{}

func (PromptAdapter) Name() string { return "prompt" }

func (PromptAdapter) Detect([]byte) bool { return true }

func (PromptAdapter) Normalize(ctx context.Context, raw []byte, _ content.NormalizeOptions) (content.Normalized, error) {
	if err := ctx.Err(); err != nil {
		return content.Normalized{}, err
	}
	return Prompt(string(raw))
}

// Adapters returns the three source adapters in Detect-routing order.
func Adapters() []content.SourceAdapter {
	return []content.SourceAdapter{MarkupAdapter{}, DataAdapter{}, PromptAdapter{}}
}
