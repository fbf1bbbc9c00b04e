package slack

import (
	"net/http"

	libSlack "github.com/appbridge/slack-bridge/internal/slack"
)

// notifyHandler is an implementation of the http.Handler interface that
// posts a notification, typed into the app page's form, to the workspace's
// incoming webhook.
type notifyHandler struct {
	notifier libSlack.Notifier
	page     *AppPage
}

// NewNotifyHandler returns an implementation of the http.Handler interface
// that posts a notification to the workspace's incoming webhook.
func NewNotifyHandler(
	notifier libSlack.Notifier,
	page *AppPage,
) http.Handler {
	return &notifyHandler{
		notifier: notifier,
		page:     page,
	}
}

func (n *notifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	if text == "" {
		text = "Hello!"
	}
	if err := n.notifier.Notify(r.Context(), text, nil); err != nil {
		n.page.Render(w, err.Error())
		return
	}
	n.page.Render(w, "Notification sent to Slack channel.")
}
