package conversations

// longest stored conversation title before truncation kicks in
const titleMaxLen = 50

// TitleFromPrompt derives a conversation title from the opening prompt:
// prompts of 50 characters or fewer are stored verbatim, longer prompts are
// cut at 50 characters with an ellipsis marker appended.
func TitleFromPrompt(prompt string) string {
	runes := []rune(prompt)

	if len(runes) <= titleMaxLen {
		return prompt
	}

	return string(runes[:titleMaxLen]) + "..."
}
