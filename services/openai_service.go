package services

import (
	"Eatdentify/config/environment"
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService handles the chat-assistant completions, including image
// analysis for photos the user uploads.
type OpenAIService struct {
	Client *openai.Client
}

// NewOpenAIService creates a new instance of OpenAIService
func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		Client: openai.NewClient(environment.GetOpenAIKey()),
	}
}

// ChatStream starts a streaming chat completion over the given transcript.
func (s *OpenAIService) ChatStream(ctx context.Context, messages []openai.ChatCompletionMessage) (*openai.ChatCompletionStream, error) {
	return s.Client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:     openai.GPT4o,
		Messages:  messages,
		MaxTokens: 500,
		Stream:    true,
	})
}

// AnalyzeImage answers a prompt about one image URL.
func (s *OpenAIService) AnalyzeImage(ctx context.Context, prompt, imageURL string) (string, error) {
	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			},
		},
		MaxTokens: 500,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no valid response received")
	}
	return resp.Choices[0].Message.Content, nil
}
