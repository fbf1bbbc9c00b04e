package slack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAccess(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		assertions func(*Access, error)
	}{
		{
			name: "empty string means unauthenticated",
			raw:  "",
			assertions: func(access *Access, err error) {
				require.NoError(t, err)
				require.Nil(t, access)
				require.False(t, access.Configured())
			},
		},
		{
			name: "whitespace means unauthenticated",
			raw:  "  \n",
			assertions: func(access *Access, err error) {
				require.NoError(t, err)
				require.Nil(t, access)
			},
		},
		{
			name: "empty object means unauthenticated",
			raw:  "{}",
			assertions: func(access *Access, err error) {
				require.NoError(t, err)
				require.Nil(t, access)
				require.False(t, access.Configured())
			},
		},
		{
			name: "malformed record",
			raw:  "this is not json",
			assertions: func(access *Access, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "error parsing persisted access record")
				require.Nil(t, access)
			},
		},
		{
			name: "fully populated record",
			raw: `{"access_token":"xoxp-1234","scope":["incoming-webhook",` +
				`"commands"],"team_name":"Control","team_id":"T0001",` +
				`"incoming_webhook":{"url":"https://hooks.slack.com/services/abc",` +
				`"channel":"#general"}}`,
			assertions: func(access *Access, err error) {
				require.NoError(t, err)
				require.NotNil(t, access)
				require.Equal(t, "xoxp-1234", access.Token)
				require.Equal(t, []string{"incoming-webhook", "commands"}, access.Scopes)
				require.Equal(t, "Control", access.TeamName)
				require.Equal(t, "T0001", access.TeamID)
				require.Equal(
					t,
					"https://hooks.slack.com/services/abc",
					access.IncomingWebhook.URL,
				)
				require.Equal(t, "#general", access.IncomingWebhook.Channel)
				require.True(t, access.Configured())
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			access, err := ParseAccess(testCase.raw)
			testCase.assertions(access, err)
		})
	}
}

func TestAccessRoundTrip(t *testing.T) {
	original := &Access{
		Token:    "xoxp-1234",
		Scopes:   []string{"incoming-webhook", "commands"},
		TeamName: "Control",
		TeamID:   "T0001",
		IncomingWebhook: IncomingWebhook{
			URL:     "https://hooks.slack.com/services/abc",
			Channel: "#general",
		},
	}
	raw, err := original.Raw()
	require.NoError(t, err)
	parsed, err := ParseAccess(raw)
	require.NoError(t, err)
	require.Equal(t, original, parsed)
}

func TestAccessConfigured(t *testing.T) {
	testCases := []struct {
		name       string
		access     *Access
		configured bool
	}{
		{
			name:       "nil access",
			access:     nil,
			configured: false,
		},
		{
			name:       "access without webhook URL",
			access:     &Access{Token: "xoxp-1234"},
			configured: false,
		},
		{
			name: "access with webhook URL",
			access: &Access{
				Token: "xoxp-1234",
				IncomingWebhook: IncomingWebhook{
					URL: "https://hooks.slack.com/services/abc",
				},
			},
			configured: true,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.configured, testCase.access.Configured())
		})
	}
}

func TestAccessHolder(t *testing.T) {
	holder := NewAccessHolder(nil)
	require.Nil(t, holder.Get())
	access := &Access{
		Token: "xoxp-1234",
		IncomingWebhook: IncomingWebhook{
			URL: "https://hooks.slack.com/services/abc",
		},
	}
	holder.Replace(access)
	require.Same(t, access, holder.Get())
	replacement := &Access{
		Token: "xoxp-5678",
		IncomingWebhook: IncomingWebhook{
			URL: "https://hooks.slack.com/services/def",
		},
	}
	holder.Replace(replacement)
	require.Same(t, replacement, holder.Get())
}
