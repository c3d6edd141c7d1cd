// Package chat runs the conversation with the Little Zhi assistant.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Fixed texts of the assistant persona.
const (
	Greeting      = "Hi there! I am Little Zhi. Feeling confused about your major or future? Chat with me!"
	FallbackReply = "Sorry, Little Zhi is taking a nap. Please try again later."
	EmptyReply    = "I'm having a little trouble thinking right now."
)

const systemPrompt = "You are 'Little Zhi', a warm, encouraging, and knowledgeable AI assistant for college students. " +
	"You help with career planning, academic questions, and emotional support. Keep answers concise and helpful."

// Part is one text fragment of a turn.
type Part struct {
	Text string `json:"text"`
}

// Turn is a prior message in the shape the chat contract uses.
type Turn struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// Text joins the turn's parts.
func (t Turn) Text() string {
	var b strings.Builder
	for _, p := range t.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Config controls the Gateway.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds one reply. Zero means no extra deadline.
	Timeout time.Duration
}

// DefaultConfig returns recommended settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
		Timeout:     30 * time.Second,
	}
}

// Gateway sends one chat turn to an LLM provider.
type Gateway struct {
	provider llm.Provider
	config   Config
}

// NewGateway creates a Gateway.
func NewGateway(provider llm.Provider, cfg Config) *Gateway {
	return &Gateway{provider: provider, config: cfg}
}

// Reply continues the conversation in history with message and returns the
// model's text. It makes exactly one provider call.
func (g *Gateway) Reply(ctx context.Context, history []Turn, message string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == RoleModel {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text()})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    msgs,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}
	return resp.Text(), nil
}
