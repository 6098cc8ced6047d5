package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/orderbuddy/orderbuddy-backend/pkg/config"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"github.com/orderbuddy/orderbuddy-backend/pkg/logger"
	"github.com/orderbuddy/orderbuddy-backend/pkg/openai"
	pkgredis "github.com/orderbuddy/orderbuddy-backend/pkg/redis"
)

// ChatRequest is the assistant invocation payload.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context"`
}

// ChatResponse carries the assistant reply and the caller's context back.
type ChatResponse struct {
	Response     string `json:"response"`
	Context      string `json:"context"`
	UserLocation string `json:"user_location"`
}

const defaultChatContext = "general"

// Service answers shopping questions with per-user conversation memory.
type Service interface {
	Chat(ctx context.Context, user *models.User, req ChatRequest) (*ChatResponse, error)
}

type chatCompleter interface {
	ChatComplete(ctx context.Context, messages []openai.ChatMessage) (string, error)
}

type historyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	AssistantSessionKey(sessionID string) string
}

type service struct {
	llm     chatCompleter
	history historyStore
	cfg     config.AssistantConfig
	logg    *logger.Logger
}

// NewService constructs an assistant service instance.
func NewService(llm chatCompleter, history historyStore, cfg config.AssistantConfig, logg *logger.Logger) (Service, error) {
	if llm == nil {
		return nil, fmt.Errorf("chat client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{llm: llm, history: history, cfg: cfg, logg: logg}, nil
}

// Chat sends the user's message to the model with their profile and recent
// conversation turns. History storage is best effort: a Redis outage degrades
// the assistant to stateless replies instead of failing the request.
func (s *service) Chat(ctx context.Context, user *models.User, req ChatRequest) (*ChatResponse, error) {
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user profile required")
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}

	chatContext := strings.TrimSpace(req.Context)
	if chatContext == "" {
		chatContext = defaultChatContext
	}

	location := fmt.Sprintf("%s, %s, %s", user.VillageCity, user.Taluk, user.District)
	sessionID := fmt.Sprintf("orderbuddy_%s", user.ID)

	messages := []openai.ChatMessage{{
		Role:    openai.ChatRoleSystem,
		Content: systemPrompt(user, location, chatContext),
	}}
	messages = append(messages, s.loadHistory(ctx, sessionID)...)
	messages = append(messages, openai.ChatMessage{Role: openai.ChatRoleUser, Content: message})

	reply, err := s.llm.ChatComplete(ctx, messages)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "ai assistant")
	}

	s.saveHistory(ctx, sessionID, append(s.loadHistory(ctx, sessionID),
		openai.ChatMessage{Role: openai.ChatRoleUser, Content: message},
		openai.ChatMessage{Role: openai.ChatRoleAssistant, Content: reply},
	))

	return &ChatResponse{
		Response:     reply,
		Context:      chatContext,
		UserLocation: location,
	}, nil
}

func systemPrompt(user *models.User, location, chatContext string) string {
	return fmt.Sprintf(`You are OrderBuddy AI Assistant, helping users with their shopping needs in Tamil Nadu.
You are assisting a %s named %s from %s.

Context: %s

Be helpful, friendly, and provide concise responses about:
- Product recommendations
- Order assistance
- Shop information
- Local shopping guidance

Always respond in a helpful and professional manner.`, user.Role, user.Name, location, chatContext)
}

func (s *service) loadHistory(ctx context.Context, sessionID string) []openai.ChatMessage {
	if s.history == nil {
		return nil
	}
	raw, err := s.history.Get(ctx, s.history.AssistantSessionKey(sessionID))
	if err != nil {
		if !pkgredis.IsNil(err) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "assistant history read failed")
		}
		return nil
	}
	var turns []openai.ChatMessage
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return nil
	}
	return turns
}

func (s *service) saveHistory(ctx context.Context, sessionID string, turns []openai.ChatMessage) {
	if s.history == nil {
		return
	}
	if depth := s.cfg.HistoryDepth * 2; depth > 0 && len(turns) > depth {
		turns = turns[len(turns)-depth:]
	}
	raw, err := json.Marshal(turns)
	if err != nil {
		return
	}
	if err := s.history.Set(ctx, s.history.AssistantSessionKey(sessionID), string(raw), s.cfg.HistoryTTL); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "assistant history write failed")
	}
}
