// Package transcript renders conversations for people to read.
package transcript

import (
	"strings"

	"github.com/russross/blackfriday"

	"github.com/dskvich/openai-payloads/pkg/domain"
)

// Markdown renders one block per message: a bold role header, the speaker
// name when set, then the content.
func Markdown(conv *domain.Conversation) string {
	if conv == nil {
		return ""
	}

	var sb strings.Builder
	for i, m := range conv.Messages() {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString("**")
		sb.WriteString(m.Role.OrDefault().String())
		sb.WriteString("**")
		if m.Name != "" {
			sb.WriteString(" (")
			sb.WriteString(m.Name)
			sb.WriteString(")")
		}
		sb.WriteString(":\n\n")

		content := strings.TrimSpace(m.Content)
		if content == "" {
			content = "_empty_"
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String()
}

func HTML(conv *domain.Conversation) string {
	return string(blackfriday.MarkdownCommon([]byte(Markdown(conv))))
}
