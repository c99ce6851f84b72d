package provider

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// tokenExpiryBuffer is how long before the upstream-reported expiry a
// cached token is treated as stale.
const tokenExpiryBuffer = time.Minute

// tokenSource wraps the OAuth2 client-credentials flow. Tokens are
// cached and refreshed once they come within the expiry buffer.
type tokenSource struct {
	src oauth2.TokenSource
}

func newTokenSource(tokenURL, clientID, clientSecret string, httpClient *http.Client) *tokenSource {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		// The provider expects credentials in the form body, not a
		// Basic auth header.
		AuthStyle: oauth2.AuthStyleInParams,
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)

	return &tokenSource{
		src: oauth2.ReuseTokenSourceWithExpiry(nil, conf.TokenSource(ctx), tokenExpiryBuffer),
	}
}

// Token returns the cached access token, fetching a fresh one when the
// cache is empty or inside the expiry buffer.
func (ts *tokenSource) Token() (string, error) {
	tok, err := ts.src.Token()
	if err != nil {
		return "", classifyTokenError(err)
	}
	return tok.AccessToken, nil
}

// classifyTokenError maps token endpoint failures onto the provider
// error taxonomy. Providers answer bad client credentials with either
// 400 or 401.
func classifyTokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := retrieveErr.Response.StatusCode
		if status == http.StatusUnauthorized || status == http.StatusBadRequest {
			return &AuthError{Message: upstreamMessage(retrieveErr.Body, status)}
		}
		return &SearchError{StatusCode: status, Message: upstreamMessage(retrieveErr.Body, status), Err: err}
	}
	return &SearchError{Message: "token request: " + err.Error(), Err: err}
}
