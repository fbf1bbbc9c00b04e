package slack

import (
	"html/template"
	"log"
	"net/http"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"

	libSlack "github.com/appbridge/slack-bridge/internal/slack"
)

// AppPage renders the minimal operator-facing page: an add-to-slack link
// while the app is unauthorized, a notification form once it is, and a
// banner with the outcome of the last action.
type AppPage struct {
	clientID     string
	accessHolder *libSlack.AccessHolder
	template     *template.Template
}

// NewAppPage returns an AppPage that reflects the current authorization
// state held by the given AccessHolder.
func NewAppPage(
	clientID string,
	accessHolder *libSlack.AccessHolder,
) (*AppPage, error) {
	pageTemplate, err := template.New(
		"template",
	).Funcs(sprig.HtmlFuncMap()).Parse(appPageTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing app page template")
	}
	return &AppPage{
		clientID:     clientID,
		accessHolder: accessHolder,
		template:     pageTemplate,
	}, nil
}

// ServeHTTP renders the page with no result banner.
func (a *AppPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Render(w, "")
}

// Render writes the page, including the given result message if any.
func (a *AppPage) Render(w http.ResponseWriter, resultMessage string) {
	access := a.accessHolder.Get()
	data := struct {
		ResultMessage string
		Authenticated bool
		ClientID      string
		TeamName      string
		Scopes        []string
	}{
		ResultMessage: resultMessage,
		Authenticated: access.Configured(),
		ClientID:      a.clientID,
	}
	if access != nil {
		data.TeamName = access.TeamName
		data.Scopes = access.Scopes
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.template.Execute(w, data); err != nil {
		log.Println(errors.Wrap(err, "error rendering app page"))
	}
}

var appPageTemplate = `<html>
	<head>
		<title>Slack App</title>

		<style>
			body {
				font-family: Helvetica, sans-serif;
				padding: 20px;
			}

			.notification {
				padding: 20px;
				background-color: #fafad2;
			}

			input {
				padding: 10px;
				font-size: 1.2em;
				width: 100%;
			}
		</style>
	</head>

	<body>
		<h1>Slack Integration Example</h1>

		{{- if .ResultMessage }}
		<p class="notification">
			{{ .ResultMessage }}
		</p>
		{{- end }}

		{{- if .Authenticated }}
		<p>
			Authorized for team {{ .TeamName }} ({{ join ", " .Scopes }}).
		</p>
		<form action="/notify" method="post">
			<p>
				<input type="text" name="text" placeholder="Type your notification here and press enter to send." />
			</p>
		</form>
		{{- else }}
		<p>
			<a href="https://slack.com/oauth/authorize?scope=incoming-webhook,commands&client_id={{ .ClientID }}"><img alt="Add to Slack" height="40" width="139" src="https://platform.slack-edge.com/img/add_to_slack.png" srcset="https://platform.slack-edge.com/img/add_to_slack.png 1x, https://platform.slack-edge.com/img/add_to_slack@2x.png 2x"></a>
		</p>
		{{- end }}

	</body>
</html>
`
