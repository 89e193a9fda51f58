package google

import (
	"github.com/spetersoncode/structured"
	"google.golang.org/genai"
)

// convertMessages splits system messages into a system instruction and
// converts the rest to conversation contents. Assistant turns use the
// "model" role.
func convertMessages(messages []structured.Message) ([]*genai.Content, *genai.Content) {
	var contents []*genai.Content
	var systemParts []*genai.Part

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case structured.RoleSystem:
			systemParts = append(systemParts, &genai.Part{Text: msg.Content})
		case structured.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	var system *genai.Content
	if len(systemParts) > 0 {
		system = &genai.Content{Parts: systemParts}
	}
	return contents, system
}
