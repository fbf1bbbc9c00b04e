package slack

import (
	"log"
	"net/http"

	"github.com/pkg/errors"

	libSlack "github.com/appbridge/slack-bridge/internal/slack"
)

// oauthCallbackHandler is an implementation of the http.Handler interface
// that completes Slack's OAuth redirect: it exchanges the authorization
// code for an Access, installs it as the current credential, and hands the
// serialized record to the embedding application for persistence.
type oauthCallbackHandler struct {
	service      libSlack.OAuthService
	accessHolder *libSlack.AccessHolder
	persistFn    func(raw string) error
	page         *AppPage
}

// NewOAuthCallbackHandler returns an implementation of the http.Handler
// interface that completes Slack's OAuth redirect.
func NewOAuthCallbackHandler(
	service libSlack.OAuthService,
	accessHolder *libSlack.AccessHolder,
	persistFn func(raw string) error,
	page *AppPage,
) http.Handler {
	return &oauthCallbackHandler{
		service:      service,
		accessHolder: accessHolder,
		persistFn:    persistFn,
		page:         page,
	}
}

func (o *oauthCallbackHandler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	code := r.URL.Query().Get("code")
	access, err := o.service.Exchange(r.Context(), code)
	if err != nil {
		// An AuthorizationError's message comes from Slack and is meant for
		// the end user, so it is shown as-is.
		o.page.Render(w, err.Error())
		return
	}
	o.accessHolder.Replace(access)
	raw, err := access.Raw()
	if err == nil {
		err = o.persistFn(raw)
	}
	if err != nil {
		log.Println(errors.Wrap(err, "error persisting access record"))
		o.page.Render(
			w,
			"The application was added, but the credential could not be saved.",
		)
		return
	}
	o.page.Render(
		w,
		"The application was successfully added to your Slack channel",
	)
}
