package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moodriver/encore/internal/services"
	"github.com/moodriver/encore/internal/shared"
)

// songsPayload is the JSON shape the prompt instructs the model to return.
type songsPayload struct {
	Songs []services.Suggestion `json:"songs"`
}

// Clean strips incidental formatting from a model reply: surrounding
// whitespace, markdown code-fence markers, and stray backticks. The inner
// content is left untouched. Clean never fails.
func Clean(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.Trim(cleaned, "`")

	return strings.TrimSpace(cleaned)
}

// Parse strictly decodes a cleaned reply into suggestions.
//
// Any syntax or schema error surfaces as [shared.ErrBadResponse] wrapping the
// decoder's message; there is no partial recovery.
func Parse(cleaned string) ([]services.Suggestion, error) {
	var payload songsPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBadResponse, err)
	}

	return payload.Songs, nil
}
