package auth

import (
	"fmt"

	"github.com/sawwere/team-selection/internal/config"

	"golang.org/x/oauth2"
)

// Config holds the OAuth2 and JWT settings for the auth service
type Config struct {
	OAuth               oauth2.Config
	UserInfoURL         string
	JWTSecret           string
	FrontendRedirectURL string
}

// NewConfig builds the auth configuration from the application config
func NewConfig(cfg *config.Config) (*Config, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is not configured")
	}
	if cfg.OAuthClientID == "" || cfg.OAuthClientSecret == "" {
		return nil, fmt.Errorf("OAuth client credentials are not configured")
	}

	return &Config{
		OAuth: oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
		UserInfoURL:         cfg.OAuthUserInfoURL,
		JWTSecret:           cfg.JWTSecret,
		FrontendRedirectURL: cfg.FrontendRedirectURL,
	}, nil
}
