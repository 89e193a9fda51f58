package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/structured"
)

// convertMessages splits system messages into the system prompt blocks and
// converts the rest to conversation turns.
func convertMessages(messages []structured.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		// Anthropic rejects empty text blocks.
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case structured.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case structured.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return result, system
}
