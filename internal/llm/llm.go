package llm

import (
	"context"
	"errors"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one {role, content} pair in a conversation.
type Message struct {
	Role    Role
	Content string
}

// ErrRateLimited marks a remote quota rejection. Callers retry on it;
// every other error is final for the request.
var ErrRateLimited = errors.New("rate limited")

// Client is a minimal chat-completion interface to allow pluggable providers.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
