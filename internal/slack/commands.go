package slack

import (
	slackAPI "github.com/slack-go/slack"
)

// CommandHandler is a function bound to a slash command name. It receives
// the free-text argument of the command and the display name of the
// invoking user and produces the reply payload.
type CommandHandler func(text, userName string) CommandResponse

// CommandResponse encapsulates the payload returned to Slack in answer to
// a slash command.
type CommandResponse struct {
	// ResponseType distinguishes a channel-visible reply ("in_channel")
	// from a private one. Slack treats an absent value as private.
	ResponseType string `json:"response_type,omitempty"`
	// Text is the message text of the reply.
	Text string `json:"text"`
	// Attachments optionally carries rich attachments with the reply.
	Attachments []slackAPI.Attachment `json:"attachments,omitempty"`
}

// CommandDispatcher is an interface for components that can answer inbound
// slash command callbacks from Slack.
type CommandDispatcher interface {
	// Register binds a handler to a command name, e.g. "/joke".
	// Registration happens at composition time only; there is no removal.
	Register(command string, handler CommandHandler)
	// Handle validates the request's shared-secret token, looks up the
	// handler registered for the command, and returns its payload. It never
	// fails: Slack requires some valid JSON response within its timeout
	// regardless of what went wrong internally, so every failure path
	// degrades to one of two fixed fallback payloads.
	Handle(token, command, text, userName string) CommandResponse
}

type commandDispatcher struct {
	commandToken string
	handlers     map[string]CommandHandler
}

// NewCommandDispatcher returns an implementation of the CommandDispatcher
// interface that authenticates requests against the given shared-secret
// token.
func NewCommandDispatcher(commandToken string) CommandDispatcher {
	return &commandDispatcher{
		commandToken: commandToken,
		handlers:     map[string]CommandHandler{},
	}
}

func (c *commandDispatcher) Register(
	command string,
	handler CommandHandler,
) {
	c.handlers[command] = handler
}

func (c *commandDispatcher) Handle(
	token string,
	command string,
	text string,
	userName string,
) CommandResponse {
	// An unset token on either side is always a rejection. Two empty
	// strings being equal is not authorization.
	if token == "" || c.commandToken == "" || token != c.commandToken {
		return CommandResponse{
			Text: "Oops... Something went wrong.",
		}
	}
	handler, ok := c.handlers[command]
	if !ok {
		return unknownCommandResponse()
	}
	return invokeHandler(handler, text, userName)
}

// invokeHandler runs a registered handler, folding a panic into the
// unknown-command fallback so the never-fail contract of Handle holds even
// for misbehaving handlers.
func invokeHandler(
	handler CommandHandler,
	text string,
	userName string,
) (response CommandResponse) {
	defer func() {
		if r := recover(); r != nil {
			response = unknownCommandResponse()
		}
	}()
	return handler(text, userName)
}

func unknownCommandResponse() CommandResponse {
	return CommandResponse{
		Text: "Sorry, I don't know how to respond to the command.",
	}
}
