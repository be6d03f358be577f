package providers

import (
	"encoding/json"
	"fmt"
	"strings"
)

const promptFraming = "You are MePlus.ai, an AI Task Generation system that creates " +
	"intelligent, personalized tasks for professionals based on their goals, " +
	"mindset, and business needs."

// BuildPrompt renders the composite prompt sent to every provider: the fixed
// framing, the raw user prompt, then labeled JSON renderings of the optional
// user context and metadata. The rendering is deterministic (json.Marshal
// sorts map keys) so provider swaps stay a pure backend change.
func BuildPrompt(userPrompt string, userContext, metadata map[string]interface{}) string {
	var b strings.Builder
	b.WriteString(promptFraming)
	b.WriteString("\n\nPrompt: ")
	b.WriteString(userPrompt)

	if section := renderSection(userContext); section != "" {
		b.WriteString("\n\nUser context: ")
		b.WriteString(section)
	}
	if section := renderSection(metadata); section != "" {
		b.WriteString("\n\nMetadata: keep in mind the following metadata: ")
		b.WriteString(section)
	}

	b.WriteString("\n")
	return b.String()
}

func renderSection(data map[string]interface{}) string {
	if len(data) == 0 {
		return ""
	}
	rendered, err := json.Marshal(data)
	if err != nil {
		// Non-serializable values degrade to their fmt rendering rather
		// than dropping the section.
		return fmt.Sprintf("%v", data)
	}
	return string(rendered)
}
