package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/pvhao2002/smart-health-sub000/internal/api"
	"github.com/pvhao2002/smart-health-sub000/internal/model"
	"github.com/pvhao2002/smart-health-sub000/internal/store"
)

const (
	MinPasswordLen = 8
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type AuthService struct {
	API  *api.Client
	Auth *store.AuthStore
}

func NewAuthService(c *api.Client, auth *store.AuthStore) *AuthService {
	return &AuthService{API: c, Auth: auth}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and stores the returned session in the auth store.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	var user model.User
	if err := s.API.Post(ctx, "/auth/login", credentials{Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	if user.Token == "" {
		return nil, errors.New("login response missing token")
	}
	s.Auth.Login(user)
	return &user, nil
}

// Register creates the account and logs straight in when the backend
// returns a token with the created user.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	var user model.User
	if err := s.API.Post(ctx, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	if user.Token != "" {
		s.Auth.Login(user)
	}
	return &user, nil
}

func (s *AuthService) Logout() {
	s.Auth.Logout()
}

// Profile fetches the current user; checkout uses it to prefill the
// shipping address and phone.
func (s *AuthService) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := s.API.Get(ctx, "/users/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile saves the editable profile fields and returns the
// refreshed profile.
func (s *AuthService) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.User, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	var user model.User
	if err := s.API.Put(ctx, "/users/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return s.API.Post(ctx, "/users/change-password", body, nil)
}
