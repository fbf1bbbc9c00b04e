package main

import (
	"github.com/brigadecore/brigade-foundations/http"
	"github.com/brigadecore/brigade-foundations/os"
)

// slackConfig resolves the Slack app settings from environment variables.
// Each falls back to the empty string when unset; an empty command token
// means the dispatcher authorizes nothing.
func slackConfig() (clientID, clientSecret, commandToken string) {
	return os.GetEnvVar("SLACK_CLIENT_ID", ""),
		os.GetEnvVar("SLACK_CLIENT_SECRET", ""),
		os.GetEnvVar("SLACK_COMMAND_TOKEN", "")
}

// accessFilePath resolves the location of the persisted credential record
// from an environment variable.
func accessFilePath() string {
	return os.GetEnvVar("ACCESS_FILE_PATH", "access.json")
}

// serverConfig populates configuration for the HTTP/S server from
// environment variables.
func serverConfig() (http.ServerConfig, error) {
	config := http.ServerConfig{}
	var err error
	config.Port, err = os.GetIntFromEnvVar("PORT", 8080)
	if err != nil {
		return config, err
	}
	config.TLSEnabled, err = os.GetBoolFromEnvVar("TLS_ENABLED", false)
	if err != nil {
		return config, err
	}
	if config.TLSEnabled {
		config.TLSCertPath, err = os.GetRequiredEnvVar("TLS_CERT_PATH")
		if err != nil {
			return config, err
		}
		config.TLSKeyPath, err = os.GetRequiredEnvVar("TLS_KEY_PATH")
		if err != nil {
			return config, err
		}
	}
	return config, nil
}
