package slack

import "fmt"

// AuthorizationError indicates that Slack rejected an OAuth authorization
// code. The message is authored by Slack and is surfaced to the end user
// as-is, so it is never wrapped or translated.
type AuthorizationError struct {
	// Message is the error string from Slack's response, verbatim.
	Message string
}

func (a *AuthorizationError) Error() string {
	return a.Message
}

// TransportError indicates that an outbound call to Slack could not be
// completed at all, as distinct from Slack having answered with a
// rejection.
type TransportError struct {
	// Cause is the underlying transport failure.
	Cause error
}

func (t *TransportError) Error() string {
	return fmt.Sprintf("error communicating with slack: %s", t.Cause)
}

func (t *TransportError) Unwrap() error {
	return t.Cause
}

// NotConfiguredError indicates an attempt to send a notification without a
// configured webhook credential.
type NotConfiguredError struct{}

func (n *NotConfiguredError) Error() string {
	return "Access token not specified"
}

// DeliveryError indicates that the webhook endpoint did not acknowledge a
// posted message with its success sentinel. Whatever the endpoint actually
// said is deliberately NOT included here; only the OAuth flow surfaces
// remote-authored messages.
type DeliveryError struct{}

func (d *DeliveryError) Error() string {
	return "There was an error when posting to Slack"
}
