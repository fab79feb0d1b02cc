package app

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Completer produces free-form text. Used for the unconstrained analysis and
// extraction stages, where output quality matters more than output format.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Chooser produces one element of a supplied candidate set. This is a distinct
// capability from Completer on purpose: the fallback path is only correct
// because the output space is provably restricted to the choices.
type Chooser interface {
	Choose(ctx context.Context, prompt string, choices []string) (string, error)
}

// TextModel is what the LLM player needs from a language model.
type TextModel interface {
	Completer
	Chooser
}

// OpenAIModel backs TextModel with the OpenAI chat-completions API.
type OpenAIModel struct {
	client *openai.Client
	model  string
}

func NewOpenAIModel(apiKey, model string) *OpenAIModel {
	return &OpenAIModel{client: openai.NewClient(apiKey), model: model}
}

func (m *OpenAIModel) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Choose asks the model to pick from the candidate list at temperature zero,
// then resolves the reply against the list. Whatever comes back, the returned
// string is always a member of choices; an unresolvable reply is an error, not
// a guess.
func (m *OpenAIModel) Choose(ctx context.Context, prompt string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("openai choice: no choices supplied")
	}

	choicePrompt := fmt.Sprintf(
		"%s\n\nAnswer with exactly one item from this list and nothing else:\n%s\n",
		prompt, strings.Join(choices, "\n"))

	resp, err := m.client.CreateChatCompletion(ctx, m.chooseRequest(choicePrompt))
	if err != nil {
		return "", fmt.Errorf("openai choice: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai choice: empty response")
	}

	picked, ok := ResolveChoice(resp.Choices[0].Message.Content, choices)
	if !ok {
		return "", fmt.Errorf("openai choice: reply %q matches no candidate", resp.Choices[0].Message.Content)
	}
	return picked, nil
}

// chooseRequest builds the constrained-choice request. The Temperature field
// is omitempty, so a literal 0 would be dropped from the JSON and the server
// default would sample instead; the library convention for "really zero" is
// the smallest nonzero float.
func (m *OpenAIModel) chooseRequest(prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   8,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
}

// ResolveChoice maps raw model output onto one of the candidates: exact match
// on the trimmed reply first, then case-insensitive, then the first candidate
// the reply contains as a word. Returns false if nothing matches.
func ResolveChoice(reply string, choices []string) (string, bool) {
	reply = strings.TrimSpace(reply)
	for _, c := range choices {
		if reply == c {
			return c, true
		}
	}
	for _, c := range choices {
		if strings.EqualFold(reply, c) {
			return c, true
		}
	}
	fields := strings.FieldsFunc(reply, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	for _, f := range fields {
		for _, c := range choices {
			if strings.EqualFold(f, c) {
				return c, true
			}
		}
	}
	return "", false
}
