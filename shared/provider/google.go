package provider

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2v2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var (
	ErrInvalidGoogleAudience = errors.New("invalid google audience")
)

// OAuthError carries the error text returned by the identity provider.
type OAuthError struct {
	Message string
}

func (e *OAuthError) Error() string {
	return e.Message
}

// GoogleProfile is the subset of the Google account profile the API uses.
type GoogleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	VerifiedEmail bool   `json:"verified_email"`
}

type GoogleOAuthProvider struct {
	config     *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
}

// GoogleOption customises a GoogleOAuthProvider.
type GoogleOption func(*GoogleOAuthProvider)

// WithGoogleEndpoints overrides the token endpoint and the Google API base URL.
func WithGoogleEndpoints(tokenURL, apiBaseURL string) GoogleOption {
	return func(p *GoogleOAuthProvider) {
		p.config.Endpoint.TokenURL = tokenURL
		p.apiBaseURL = apiBaseURL
	}
}

// NewGoogleOAuthProvider creates a provider for the authorization code flow.
func NewGoogleOAuthProvider(clientID, clientSecret, redirectURL string, opts ...GoogleOption) *GoogleOAuthProvider {
	p := &GoogleOAuthProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{oauth2v2.UserinfoEmailScope, oauth2v2.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Exchange trades an authorization code for an access token and fetches the
// account profile with it. Provider-side failures are returned as *OAuthError
// carrying the provider's own message.
func (p *GoogleOAuthProvider) Exchange(ctx context.Context, code, redirectURI string) (*GoogleProfile, error) {
	cfg := *p.config
	if redirectURI != "" {
		cfg.RedirectURL = redirectURI
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &OAuthError{Message: retrieveErrorMessage(retrieveErr)}
		}
		return nil, err
	}

	oauth2Service, err := p.newService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := oauth2Service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, googleAPIError(err)
	}

	profile := &GoogleProfile{
		ID:      userInfo.Id,
		Email:   userInfo.Email,
		Name:    userInfo.Name,
		Picture: userInfo.Picture,
	}
	if userInfo.VerifiedEmail != nil {
		profile.VerifiedEmail = *userInfo.VerifiedEmail
	}

	return profile, nil
}

// ValidateIDToken verifies a Google ID token issued to this client, as used
// by the one-tap sign-in button.
func (p *GoogleOAuthProvider) ValidateIDToken(ctx context.Context, idToken string) (*GoogleProfile, error) {
	oauth2Service, err := p.newService(ctx, option.WithHTTPClient(p.httpClient))
	if err != nil {
		return nil, err
	}

	tokenInfoCall := oauth2Service.Tokeninfo()
	tokenInfoCall.IdToken(idToken)
	tokenInfo, err := tokenInfoCall.Context(ctx).Do()
	if err != nil {
		return nil, googleAPIError(err)
	}

	if tokenInfo.Audience != p.config.ClientID {
		return nil, ErrInvalidGoogleAudience
	}

	return &GoogleProfile{
		ID:            tokenInfo.UserId,
		Email:         tokenInfo.Email,
		VerifiedEmail: tokenInfo.VerifiedEmail,
	}, nil
}

func (p *GoogleOAuthProvider) newService(ctx context.Context, opts ...option.ClientOption) (*oauth2v2.Service, error) {
	if p.apiBaseURL != "" {
		opts = append(opts, option.WithEndpoint(p.apiBaseURL))
	}

	return oauth2v2.NewService(ctx, opts...)
}

func retrieveErrorMessage(err *oauth2.RetrieveError) string {
	switch {
	case err.ErrorDescription != "":
		return err.ErrorDescription
	case err.ErrorCode != "":
		return err.ErrorCode
	case len(err.Body) > 0:
		return string(err.Body)
	default:
		return err.Error()
	}
}

func googleAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &OAuthError{Message: apiErr.Message}
	}
	return err
}
