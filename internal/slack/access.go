package slack

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Access encapsulates the artifacts granted by a completed OAuth exchange
// with Slack. A nil *Access means the application has not been authorized
// yet; a non-nil Access is always fully populated. Partially populated
// values are never constructed.
type Access struct {
	// Token is the opaque access token issued by Slack.
	Token string `json:"access_token"`
	// Scopes enumerates the permissions Slack granted.
	Scopes []string `json:"scope"`
	// TeamName is the human-readable name of the authorized workspace.
	TeamName string `json:"team_name"`
	// TeamID is the unique ID of the authorized workspace.
	TeamID string `json:"team_id"`
	// IncomingWebhook describes the webhook Slack provisioned for posting
	// messages into the workspace.
	IncomingWebhook IncomingWebhook `json:"incoming_webhook"`
}

// IncomingWebhook encapsulates the details of a Slack incoming webhook.
type IncomingWebhook struct {
	// URL is the pre-authorized URL that accepts POSTed JSON messages.
	URL string `json:"url"`
	// Channel is the channel the webhook posts to by default. It may be
	// empty if the workspace did not designate one.
	Channel string `json:"channel,omitempty"`
}

// ParseAccess deserializes an Access from its persisted form. An empty
// string, an empty JSON object, or any record lacking both a token and a
// webhook URL all represent the unauthenticated state and yield a nil
// Access with no error.
func ParseAccess(raw string) (*Access, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	access := &Access{}
	if err := json.Unmarshal([]byte(raw), access); err != nil {
		return nil, errors.Wrap(err, "error parsing persisted access record")
	}
	if access.Token == "" && access.IncomingWebhook.URL == "" {
		return nil, nil
	}
	return access, nil
}

// Raw serializes the Access to the persisted textual form. It is the
// inverse of ParseAccess; every field round-trips exactly.
func (a *Access) Raw() (string, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return "", errors.Wrap(err, "error serializing access record")
	}
	return string(raw), nil
}

// Configured returns true if the Access exists and carries a webhook URL
// to deliver notifications to.
func (a *Access) Configured() bool {
	return a != nil && a.IncomingWebhook.URL != ""
}

// AccessHolder owns the single process-wide Access value. It is
// constructed once at startup from the persisted record and handed by
// reference to whichever component needs the current credential.
// Replacement only happens when an operator completes a fresh OAuth
// authorization; last write wins.
type AccessHolder struct {
	mu     sync.RWMutex
	access *Access
}

// NewAccessHolder returns an AccessHolder seeded with the given Access,
// which may be nil for the unauthenticated state.
func NewAccessHolder(access *Access) *AccessHolder {
	return &AccessHolder{
		access: access,
	}
}

// Get returns the current Access, or nil if the application is not
// authorized.
func (a *AccessHolder) Get() *Access {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.access
}

// Replace swaps in a new Access. The previous value is discarded; callers
// are responsible for re-persisting the new one.
func (a *AccessHolder) Replace(access *Access) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.access = access
}
