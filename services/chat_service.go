package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatService drives the FoodBot assistant: per-session history, the
// current search results as context, and streamed replies.
type ChatService struct {
	OpenAIService  *OpenAIService
	SessionService *SessionService
}

// NewChatService initializes ChatService with the OpenAI service and the
// session registry.
func NewChatService() *ChatService {
	return &ChatService{
		OpenAIService:  NewOpenAIService(),
		SessionService: GetSessionService(),
	}
}

// StreamReply answers one user turn, pushing reply fragments onto replyChan
// as they arrive. When an image URL is given the turn becomes a single
// image-analysis answer instead of a streamed completion.
func (s *ChatService) StreamReply(
	ctx context.Context,
	replyChan chan<- string,
	doneChan chan<- bool,
	userID string,
	prompt string,
	imageURL string,
) {
	defer close(replyChan)
	defer close(doneChan)

	session := s.SessionService.Get(userID)

	if imageURL != "" {
		answer, err := s.OpenAIService.AnalyzeImage(ctx, foodBotPrompt+"\n\n"+prompt, imageURL)
		if err != nil {
			log.Println("Error analyzing image:", err)
			answer = "I'm sorry, I couldn't analyze the image. Please try again."
		}
		replyChan <- answer
		session.AppendMessage("user", prompt)
		session.AppendMessage("assistant", answer)
		doneChan <- true
		return
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt(session)},
	}
	for _, turn := range session.History() {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	stream, err := s.OpenAIService.ChatStream(ctx, messages)
	if err != nil {
		log.Println("Error starting chat stream:", err)
		doneChan <- true
		return
	}
	defer stream.Close()

	var full strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Println("Error reading chat stream:", err)
			break
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta != "" {
			full.WriteString(delta)
			replyChan <- delta
		}
	}

	session.AppendMessage("user", prompt)
	session.AppendMessage("assistant", full.String())
	doneChan <- true
}

// systemPrompt extends the assistant persona with the session's current
// search results so the bot can talk about them.
func (s *ChatService) systemPrompt(session *Session) string {
	_, results := session.Current()
	if results == nil || results.Len() == 0 {
		return foodBotPrompt
	}

	resultsJSON, err := json.Marshal(results.Restaurants)
	if err != nil {
		log.Println("Error marshaling results for chat context:", err)
		return foodBotPrompt
	}

	return fmt.Sprintf(
		"%s\n\nThe user's latest restaurant search produced these results. "+
			"Refer to them when asked, and do not fabricate details that are missing:\n\n%s",
		foodBotPrompt, string(resultsJSON))
}
