package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	slackAPI "github.com/slack-go/slack"
)

// webhookSuccessBody is the literal response body Slack's incoming webhook
// endpoints use to acknowledge a delivered message.
const webhookSuccessBody = "ok"

// Notifier is an interface for components that can post a notification to
// the workspace's incoming webhook.
type Notifier interface {
	// Notify posts a message, with optional rich attachments, to the webhook
	// of the current Access. It returns a *NotConfiguredError if no webhook
	// credential is configured, a *TransportError if the webhook could not
	// be reached, and a *DeliveryError if the webhook did not acknowledge
	// success. Exactly one attempt is made per call.
	Notify(
		ctx context.Context,
		text string,
		attachments []slackAPI.Attachment,
	) error
}

type notifier struct {
	accessHolder *AccessHolder
	// Overridable for testing purposes
	httpSendFn func(*http.Request) (*http.Response, error)
}

// NewNotifier returns an implementation of the Notifier interface that
// reads the current credential from the given AccessHolder.
func NewNotifier(accessHolder *AccessHolder) Notifier {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = log.New(ioutil.Discard, "", log.LstdFlags)
	return &notifier{
		accessHolder: accessHolder,
		httpSendFn:   retryClient.StandardClient().Do,
	}
}

// webhookMessage is the JSON body posted to the incoming webhook.
type webhookMessage struct {
	Text        string                `json:"text"`
	Attachments []slackAPI.Attachment `json:"attachments"`
	Channel     string                `json:"channel,omitempty"`
}

func (n *notifier) Notify(
	ctx context.Context,
	text string,
	attachments []slackAPI.Attachment,
) error {
	access := n.accessHolder.Get()
	if !access.Configured() {
		return &NotConfiguredError{}
	}
	if attachments == nil {
		// The webhook contract calls for an array, not null
		attachments = []slackAPI.Attachment{}
	}
	body, err := json.Marshal(webhookMessage{
		Text:        text,
		Attachments: attachments,
		Channel:     access.IncomingWebhook.Channel,
	})
	if err != nil {
		return &TransportError{
			Cause: errors.Wrap(err, "error marshaling webhook message"),
		}
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		access.IncomingWebhook.URL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return &TransportError{
			Cause: errors.Wrap(err, "error preparing webhook request"),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := n.httpSendFn(req)
	if err != nil {
		return &TransportError{
			Cause: errors.Wrap(err, "error posting to webhook"),
		}
	}
	defer func() {
		if resp.Body != nil {
			resp.Body.Close()
		}
	}()
	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{
			Cause: errors.Wrap(err, "error reading webhook response"),
		}
	}
	if string(respBody) != webhookSuccessBody {
		return &DeliveryError{}
	}
	return nil
}
