package slack

import (
	"encoding/json"
	"net/http"

	libSlack "github.com/appbridge/slack-bridge/internal/slack"
)

// slashCommandHandler is an implementation of the http.Handler interface
// that can handle slash commands from Slack by delegating to a
// transport-agnostic CommandDispatcher.
type slashCommandHandler struct {
	dispatcher libSlack.CommandDispatcher
}

// NewSlashCommandHandler returns an implementation of the http.Handler
// interface that can handle slash commands from Slack by delegating to a
// transport-agnostic CommandDispatcher.
func NewSlashCommandHandler(
	dispatcher libSlack.CommandDispatcher,
) http.Handler {
	return &slashCommandHandler{
		dispatcher: dispatcher,
	}
}

func (s *slashCommandHandler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	defer r.Body.Close()
	w.Header().Set("Content-Type", "application/json")
	response := s.dispatcher.Handle(
		r.FormValue("token"),
		r.FormValue("command"),
		r.FormValue("text"),
		r.FormValue("user_name"),
	)
	responseBytes, err := json.Marshal(response)
	if err != nil {
		// The dispatcher's payloads always marshal, but Slack needs SOME valid
		// JSON body either way.
		responseBytes = []byte(`{"text": "Oops... Something went wrong."}`)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(responseBytes) // nolint: errcheck
}
