package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/store"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/textgen"
	"github.com/vivek-dahikar/AutoRegisterAgent/types"
)

const (
	SignupSuccessMessage      = "User registered successfully!"
	LoginSuccessMessage       = "Login successful!"
	MissingCredentialsMessage = "Username and password fields are required"

	signupRejectedFormat = "Invalid credentials or username already taken. AI Response: %s"
	loginRejectedFormat  = "Invalid credentials. AI Response: %s"
)

// AuthService registers and authenticates users. The generator's answer is
// advisory; existence and hash checks against the store always apply.
type AuthService struct {
	store     CredentialStore
	generator textgen.Generator
	events    *EventPublisher
	logger    logging.Logger
}

// NewAuthService wires the service. events may be nil to disable auth events.
func NewAuthService(creds CredentialStore, generator textgen.Generator, events *EventPublisher, logger logging.Logger) *AuthService {
	return &AuthService{
		store:     creds,
		generator: generator,
		events:    events,
		logger:    logger,
	}
}

// Signup asks the generator to validate the candidate and registers it when
// the answer contains "valid" and the username is still free.
func (s *AuthService) Signup(ctx context.Context, username, password string) (Outcome, error) {
	if username == "" || password == "" {
		return missingField(MissingCredentialsMessage), nil
	}

	database, err := renderDatabase(ctx, s.store)
	if err != nil {
		return Outcome{}, err
	}

	answer, err := s.generator.Generate(ctx, renderSignupPrompt(database, username, password))
	if err != nil {
		return Outcome{}, fmt.Errorf("signup judgment: %w", err)
	}

	exists, err := s.store.Exists(ctx, username)
	if err != nil {
		return Outcome{}, fmt.Errorf("check username: %w", err)
	}

	approved := textgen.ContainsValid(answer)
	if !approved || exists {
		s.logger.Info(ctx, "signup rejected", "username", username, "model_approved", approved, "username_taken", exists)
		s.events.Publish(ctx, types.AuthEventSignup, username, false)
		return rejected(fmt.Sprintf(signupRejectedFormat, answer), answer), nil
	}

	if err := s.store.Insert(ctx, username, HashPassword(password)); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			s.logger.Info(ctx, "signup lost race for username", "username", username)
			s.events.Publish(ctx, types.AuthEventSignup, username, false)
			return rejected(fmt.Sprintf(signupRejectedFormat, answer), answer), nil
		}
		return Outcome{}, fmt.Errorf("insert credential: %w", err)
	}

	s.logger.Info(ctx, "signup accepted", "username", username)
	s.events.Publish(ctx, types.AuthEventSignup, username, true)
	return accepted(SignupSuccessMessage, answer), nil
}

// Login succeeds only when the generator approves, the username exists and
// the password hash matches the stored one.
func (s *AuthService) Login(ctx context.Context, username, password string) (Outcome, error) {
	if username == "" || password == "" {
		return missingField(MissingCredentialsMessage), nil
	}

	database, err := renderDatabase(ctx, s.store)
	if err != nil {
		return Outcome{}, err
	}

	answer, err := s.generator.Generate(ctx, renderLoginPrompt(database, username, password))
	if err != nil {
		return Outcome{}, fmt.Errorf("login judgment: %w", err)
	}

	exists, err := s.store.Exists(ctx, username)
	if err != nil {
		return Outcome{}, fmt.Errorf("check username: %w", err)
	}

	matches := false
	if exists {
		matches, err = s.store.Verify(ctx, username, HashPassword(password))
		if err != nil {
			return Outcome{}, fmt.Errorf("verify credential: %w", err)
		}
	}

	approved := textgen.ContainsValid(answer)
	if !approved || !exists || !matches {
		s.logger.Info(ctx, "login rejected", "username", username, "model_approved", approved, "known_user", exists, "hash_match", matches)
		s.events.Publish(ctx, types.AuthEventLogin, username, false)
		return rejected(fmt.Sprintf(loginRejectedFormat, answer), answer), nil
	}

	s.logger.Info(ctx, "login accepted", "username", username)
	s.events.Publish(ctx, types.AuthEventLogin, username, true)
	return accepted(LoginSuccessMessage, answer), nil
}
