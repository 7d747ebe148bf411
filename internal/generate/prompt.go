// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"text/template"
)

// systemInstruction tells the model what to produce and in which shape.
const systemInstruction = `You are a study assistant. From the study notes supplied by the user, produce:
1. The 5 to 7 main topics the notes cover.
2. 5 detailed flashcards, each a question with its answer.
3. 5 challenging multiple-choice quiz questions. Each has exactly 4 options and an answer that repeats the text of the single correct option.

Reply with valid JSON only, matching the response schema. Keep every question relevant to the notes and every answer accurate.`

// userPromptTmpl wraps the (already truncated) document text.
var userPromptTmpl = template.Must(template.New("study-notes").Parse(`Here is the text from the study notes:
---
{{.Text}}
---
Please generate the study aids based on this text.`))

// renderPrompt executes the user prompt template with the given text.
func renderPrompt(text string) (string, error) {
	var buf bytes.Buffer
	if err := userPromptTmpl.Execute(&buf, struct{ Text string }{Text: text}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// responseSchema returns the structured-output schema sent with every
// request, in the Gemini OpenAPI subset (upper-case type names). The
// options array carries no item-count bounds; the descriptions state the
// expected counts instead.
func responseSchema() map[string]any {
	str := map[string]any{"type": "STRING"}
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":        "ARRAY",
				"items":       str,
				"description": "The 5 to 7 main topics of the notes.",
			},
			"flashcards": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"question": str,
						"answer":   str,
					},
					"required": []string{"question", "answer"},
				},
				"description": "5 question-answer flashcards.",
			},
			"quiz": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"question": str,
						"options": map[string]any{
							"type":        "ARRAY",
							"items":       str,
							"description": "Exactly 4 answer options for the question.",
						},
						"answer": str,
					},
					"required": []string{"question", "options", "answer"},
				},
				"description": "5 multiple-choice questions.",
			},
		},
		"required": []string{"topics", "flashcards", "quiz"},
	}
}
