package services

import (
	"context"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
)

// AuthService maps the auth endpoints. It carries no state; the session
// manager owns the resulting identity.
type AuthService struct {
	client *apiclient.Client
}

func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	var resp dtos.AuthResponse
	if err := s.client.Post(ctx, apiclient.AuthRegister(), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	var resp dtos.AuthResponse
	if err := s.client.Post(ctx, apiclient.AuthLogin(), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me verifies the current token and returns the identity behind it.
func (s *AuthService) Me(ctx context.Context) (models.User, error) {
	var resp dtos.MeResponse
	if err := s.client.Get(ctx, apiclient.AuthMe(), &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}
