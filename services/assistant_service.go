package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"roombook-backend/config"
	"roombook-backend/engine"
	"roombook-backend/models"
)

// AssistantService fronts the optional OpenAI-compatible backend for the
// suggestion, chat and question features. Every remote failure is recovered
// locally by the deterministic heuristics in the engine package, so callers
// never see a hard failure here — only possibly lower-quality answers.
type AssistantService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	retries int
	backoff time.Duration
	limiter *rate.Limiter
	cache   *redis.Client

	rooms []models.Room
	slots []models.TimeSlot
}

func NewAssistantService(cfg config.Config, rooms []models.Room, slots []models.TimeSlot) *AssistantService {
	s := &AssistantService{
		model:   cfg.AssistantModel,
		timeout: cfg.AssistantTimeout,
		retries: cfg.AssistantRetries,
		backoff: cfg.AssistantBackoff,
		limiter: rate.NewLimiter(rate.Limit(3), 5),
		rooms:   rooms,
		slots:   slots,
	}

	if cfg.AssistantAPIKey != "" {
		oc := openai.DefaultConfig(cfg.AssistantAPIKey)
		if cfg.AssistantBaseURL != "" {
			oc.BaseURL = cfg.AssistantBaseURL
		}
		s.client = openai.NewClientWithConfig(oc)
	}
	if cfg.RedisAddr != "" {
		s.cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	return s
}

// Remote reports whether an external backend is configured.
func (s *AssistantService) Remote() bool { return s.client != nil }

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SuggestRooms validates the request, then asks the remote backend for a
// ranked list. Any remote problem falls back to the rule-based scorer. The
// returned error is only ever a validation error.
func (s *AssistantService) SuggestRooms(ctx context.Context, eventDescription string, attendees int) ([]engine.Suggestion, error) {
	// Validate up front so bad input fails the same way with or without a
	// remote backend.
	local, err := engine.SuggestRooms(eventDescription, attendees, s.rooms)
	if err != nil {
		return nil, err
	}
	if s.client == nil {
		return local, nil
	}

	prompt := s.suggestionPrompt(eventDescription, attendees)
	raw, err := s.complete(ctx, "You are a room booking assistant that ranks rooms for events. Respond with JSON only.", prompt)
	if err != nil {
		log.Printf("assistant suggestions unavailable, using local scorer: %v", err)
		return local, nil
	}

	var parsed struct {
		Suggestions []engine.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || len(parsed.Suggestions) == 0 {
		log.Printf("assistant returned unusable suggestions, using local scorer")
		return local, nil
	}
	for i := range parsed.Suggestions {
		if parsed.Suggestions[i].Score < 0 {
			parsed.Suggestions[i].Score = 0
		}
		if parsed.Suggestions[i].Score > 100 {
			parsed.Suggestions[i].Score = 100
		}
	}
	return parsed.Suggestions, nil
}

// Chat answers a free-form message, preferring the remote backend and
// falling back to the FAQ table.
func (s *AssistantService) Chat(ctx context.Context, message string, history []ChatMessage) string {
	if strings.TrimSpace(message) == "" {
		return engine.FallbackResponse
	}

	if reply, ok := s.cached(ctx, "chat", message); ok {
		return reply
	}

	if s.client != nil {
		msgs := []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleSystem,
			Content: s.chatContext(),
		}}
		for _, h := range history {
			role := openai.ChatMessageRoleUser
			if h.Role == "assistant" {
				role = openai.ChatMessageRoleAssistant
			}
			msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: h.Content})
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})

		reply, err := s.completeMessages(ctx, msgs)
		if err == nil && strings.TrimSpace(reply) != "" {
			s.store(ctx, "chat", message, reply)
			return reply
		}
		log.Printf("assistant chat unavailable, using FAQ table: %v", err)
	}

	reply := engine.Answer(message)
	s.store(ctx, "chat", message, reply)
	return reply
}

// AnswerQuestion handles the single question/answer flow with the scored
// FAQ matcher as fallback.
func (s *AssistantService) AnswerQuestion(ctx context.Context, question string) string {
	if strings.TrimSpace(question) == "" {
		return engine.FallbackResponse
	}

	if answer, ok := s.cached(ctx, "question", question); ok {
		return answer
	}

	if s.client != nil {
		answer, err := s.complete(ctx, s.chatContext(), question)
		if err == nil && strings.TrimSpace(answer) != "" {
			s.store(ctx, "question", question, answer)
			return answer
		}
		log.Printf("assistant question unavailable, using FAQ table: %v", err)
	}

	answer := engine.AnswerScored(question)
	s.store(ctx, "question", question, answer)
	return answer
}

// complete runs one system+user exchange.
func (s *AssistantService) complete(ctx context.Context, system, user string) (string, error) {
	return s.completeMessages(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	})
}

// completeMessages calls the backend with the configured timeout, a bounded
// number of attempts and linear backoff between them. The rate limiter
// keeps a burst of UI requests from hammering the API.
func (s *AssistantService) completeMessages(ctx context.Context, msgs []openai.ChatCompletionMessage) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.retries; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		resp, err := s.client.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: msgs,
		})
		cancel()

		if err == nil {
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("assistant returned no choices")
			}
			return resp.Choices[0].Message.Content, nil
		}
		lastErr = err

		if attempt < s.retries {
			select {
			case <-time.After(s.backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", lastErr
}

func (s *AssistantService) suggestionPrompt(eventDescription string, attendees int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rank these rooms for the event %q with %d attendees.\n\nROOMS:\n", eventDescription, attendees)
	for _, r := range s.rooms {
		fmt.Fprintf(&b, "- id: %s, name: %s, capacity: %d, amenities: %s\n",
			r.ID, r.Name, r.Capacity, strings.Join(r.Amenities, ", "))
	}
	b.WriteString(`
Respond with a JSON object of the form
{"suggestions":[{"roomId":"...","score":0-100,"reasons":["..."],"fit":"perfect|good|acceptable|poor"}]}
sorted by score descending. Include every room; flag over-capacity rooms instead of dropping them.
Your response MUST be valid JSON and nothing else.`)
	return b.String()
}

func (s *AssistantService) chatContext() string {
	var b strings.Builder
	b.WriteString("You are the booking assistant for a room reservation service. Answer briefly using these facts.\nROOMS:\n")
	for _, r := range s.rooms {
		fmt.Fprintf(&b, "- %s: capacity %d, $%.0f/hour, amenities: %s\n",
			r.Name, r.Capacity, r.HourlyRate, strings.Join(r.Amenities, ", "))
	}
	b.WriteString("TIME SLOTS: ")
	labels := make([]string, 0, len(s.slots))
	for _, slot := range s.slots {
		labels = append(labels, slot.Label())
	}
	b.WriteString(strings.Join(labels, ", "))
	return b.String()
}

func (s *AssistantService) cacheKey(kind, query string) string {
	return "assistant:" + kind + ":" + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

func (s *AssistantService) cached(ctx context.Context, kind, query string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	val, err := s.cache.Get(ctx, s.cacheKey(kind, query)).Result()
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

func (s *AssistantService) store(ctx context.Context, kind, query, reply string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.cacheKey(kind, query), reply, time.Hour).Err(); err != nil {
		log.Printf("assistant cache write failed: %v", err)
	}
}
