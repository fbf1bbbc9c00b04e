package slack

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const defaultAPIAddress = "https://slack.com/api"

// OAuthService is an interface for components that can trade an OAuth
// authorization code for an Access.
type OAuthService interface {
	// Exchange trades the authorization code received from Slack's redirect
	// for an Access. It returns an *AuthorizationError if Slack rejected the
	// code and a *TransportError if the token endpoint could not be reached
	// or answered with something unintelligible.
	Exchange(ctx context.Context, code string) (*Access, error)
}

type oauthService struct {
	clientID     string
	clientSecret string
	apiAddress   string
	// Overridable for testing purposes
	httpSendFn func(*http.Request) (*http.Response, error)
}

// NewOAuthService returns an implementation of the OAuthService interface
// that exchanges authorization codes against Slack's oauth.access endpoint.
func NewOAuthService(clientID, clientSecret string) OAuthService {
	// One attempt per exchange. The client is retryablehttp purely for its
	// sane transport defaults; RetryMax of zero disables retries.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = log.New(ioutil.Discard, "", log.LstdFlags)
	return &oauthService{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiAddress:   defaultAPIAddress,
		httpSendFn:   retryClient.StandardClient().Do,
	}
}

// oauthAccessResponse encapsulates the fields of interest in a response
// from Slack's oauth.access endpoint.
type oauthAccessResponse struct {
	OK              bool            `json:"ok"`
	Error           string          `json:"error"`
	AccessToken     string          `json:"access_token"`
	Scope           string          `json:"scope"`
	TeamName        string          `json:"team_name"`
	TeamID          string          `json:"team_id"`
	IncomingWebhook IncomingWebhook `json:"incoming_webhook"`
}

func (o *oauthService) Exchange(
	ctx context.Context,
	code string,
) (*Access, error) {
	form := url.Values{}
	form.Set("code", code)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.apiAddress+"/oauth.access",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, &TransportError{
			Cause: errors.Wrap(err, "error preparing token exchange request"),
		}
	}
	req.SetBasicAuth(o.clientID, o.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	resp, err := o.httpSendFn(req)
	if err != nil {
		return nil, &TransportError{
			Cause: errors.Wrap(err, "error posting to token endpoint"),
		}
	}
	defer func() {
		if resp.Body != nil {
			resp.Body.Close()
		}
	}()
	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			Cause: errors.Wrap(err, "error reading token endpoint response"),
		}
	}
	tokenResp := oauthAccessResponse{}
	if err := json.Unmarshal(bodyBytes, &tokenResp); err != nil {
		return nil, &TransportError{
			Cause: errors.Wrap(err, "error parsing token endpoint response"),
		}
	}
	if !tokenResp.OK {
		return nil, &AuthorizationError{
			Message: tokenResp.Error,
		}
	}
	access := &Access{
		Token:           tokenResp.AccessToken,
		TeamName:        tokenResp.TeamName,
		TeamID:          tokenResp.TeamID,
		IncomingWebhook: tokenResp.IncomingWebhook,
	}
	if tokenResp.Scope != "" {
		access.Scopes = strings.Split(tokenResp.Scope, ",")
	}
	return access, nil
}
