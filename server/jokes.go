package main

import (
	"math/rand"

	libSlack "github.com/appbridge/slack-bridge/internal/slack"
)

var jokes = []string{
	"The box said 'Requires Windows Vista or better.' So I installed LINUX.",
	"Bugs come in through open Windows.",
	"Unix is user friendly. It's just selective about who its friends are.",
	"Computers are like air conditioners: they stop working when you open " +
		"Windows.",
	"I would love to change the world, but they won't give me the source " +
		"code.",
	"Programming today is a race between software engineers striving to " +
		"build bigger and better idiot-proof programs, and the Universe " +
		"trying to produce bigger and better idiots. So far, the Universe " +
		"is winning.",
}

// tellJoke handles the /joke slash command with a channel-visible reply.
func tellJoke(text, userName string) libSlack.CommandResponse {
	return libSlack.CommandResponse{
		ResponseType: "in_channel",
		Text:         jokes[rand.Intn(len(jokes))],
	}
}
