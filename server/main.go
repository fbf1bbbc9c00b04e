package main

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	libHTTP "github.com/brigadecore/brigade-foundations/http"
	"github.com/brigadecore/brigade-foundations/signals"
	"github.com/brigadecore/brigade-foundations/version"
	"github.com/gorilla/mux"

	libSlack "github.com/appbridge/slack-bridge/internal/slack"
	"github.com/appbridge/slack-bridge/server/internal/slack"
)

func main() {

	log.Printf(
		"Starting Slack Bridge Server -- version %s -- commit %s",
		version.Version(),
		version.Commit(),
	)

	rand.Seed(time.Now().UnixNano())

	clientID, clientSecret, commandToken := slackConfig()

	// The credential is loaded once at startup and owned by the holder from
	// here on; a fresh OAuth authorization replaces it.
	accessStore := &accessFile{path: accessFilePath()}
	var accessHolder *libSlack.AccessHolder
	{
		raw, err := accessStore.load()
		if err != nil {
			log.Fatal(err)
		}
		access, err := libSlack.ParseAccess(raw)
		if err != nil {
			log.Fatal(err)
		}
		accessHolder = libSlack.NewAccessHolder(access)
	}

	oauthService := libSlack.NewOAuthService(clientID, clientSecret)
	notifier := libSlack.NewNotifier(accessHolder)

	dispatcher := libSlack.NewCommandDispatcher(commandToken)
	dispatcher.Register("/joke", tellJoke)

	page, err := slack.NewAppPage(clientID, accessHolder)
	if err != nil {
		log.Fatal(err)
	}

	var server libHTTP.Server
	{
		loggingFilter := slack.NewLoggingFilter()
		router := mux.NewRouter()
		router.StrictSlash(true)
		router.Handle(
			"/",
			loggingFilter.Decorate(page.ServeHTTP),
		).Methods(http.MethodGet)
		router.Handle(
			"/oauth",
			loggingFilter.Decorate(
				slack.NewOAuthCallbackHandler(
					oauthService,
					accessHolder,
					accessStore.save,
					page,
				).ServeHTTP,
			),
		).Methods(http.MethodGet)
		router.Handle(
			"/notify",
			loggingFilter.Decorate(
				slack.NewNotifyHandler(notifier, page).ServeHTTP,
			),
		).Methods(http.MethodPost)
		router.Handle(
			"/slash-commands",
			loggingFilter.Decorate(
				slack.NewSlashCommandHandler(dispatcher).ServeHTTP,
			),
		).Methods(http.MethodPost)
		router.HandleFunc("/healthz", libHTTP.Healthz).Methods(http.MethodGet)
		serverConfig, err := serverConfig()
		if err != nil {
			log.Fatal(err)
		}
		server = libHTTP.NewServer(router, &serverConfig)
	}

	log.Println(
		server.ListenAndServe(signals.Context()),
	)
}
