package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sawwere/team-selection/internal/database/models"
	apperrors "github.com/sawwere/team-selection/internal/errors"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// UserProfile is the subset of the identity provider's userinfo payload
// the service cares about.
type UserProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Claims represents the JWT token claims
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles the OAuth2 login flow and JWT tokens
type AuthService struct {
	config     *Config
	users      service.UserServiceInterface
	httpClient *http.Client

	// pending login states, keyed by the state parameter
	stateMutex sync.Mutex
	states     map[string]time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *Config, users service.UserServiceInterface) *AuthService {
	return &AuthService{
		config:     config,
		users:      users,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		states:     make(map[string]time.Time),
	}
}

// AuthURL generates the OAuth2 authorization URL with a fresh state
func (s *AuthService) AuthURL() string {
	state := uuid.New().String()

	s.stateMutex.Lock()
	s.states[state] = time.Now().Add(10 * time.Minute)
	for k, deadline := range s.states {
		if time.Now().After(deadline) {
			delete(s.states, k)
		}
	}
	s.stateMutex.Unlock()

	return s.config.OAuth.AuthCodeURL(state)
}

// consumeState checks that the state came from AuthURL and is still fresh
func (s *AuthService) consumeState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	deadline, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return time.Now().Before(deadline)
}

// HandleCallback exchanges the authorization code, fetches the user profile
// and returns a signed JWT for the account. The account is created lazily on
// first login.
func (s *AuthService) HandleCallback(ctx context.Context, code, state string) (string, error) {
	if !s.consumeState(state) {
		return "", apperrors.NewAuthenticationError("invalid or expired state")
	}

	token, err := s.config.OAuth.Exchange(ctx, code)
	if err != nil {
		return "", apperrors.NewAuthenticationError(fmt.Sprintf("failed to exchange code: %v", err))
	}

	profile, err := s.fetchProfile(ctx, token.AccessToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.EnsureUser(profile.Email, profile.Name)
	if err != nil {
		return "", err
	}

	return s.GenerateJWT(user)
}

// fetchProfile retrieves the userinfo document from the identity provider
func (s *AuthService) fetchProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("failed to fetch user profile: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("userinfo endpoint returned %d", resp.StatusCode))
	}

	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, apperrors.NewAuthenticationError("failed to decode user profile")
	}
	if profile.Email == "" {
		return nil, apperrors.NewAuthenticationError("identity provider returned no email")
	}

	return &profile, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "team-selection",
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("failed to parse token: %v", err))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	return claims, nil
}

// FrontendRedirectURL returns the URL the callback redirects the browser to
func (s *AuthService) FrontendRedirectURL() string {
	return s.config.FrontendRedirectURL
}
