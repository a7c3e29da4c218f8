package services

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/repositories"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

type registerUserRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=64"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"omitempty,oneof=guest host admin"`
}

// UserService provisions the users conversations are made of.
// Credentials stay with the identity provider.
type UserService struct {
	log      *slog.Logger
	users    repositories.IUserRepository
	clock    contract.Clock
	validate *validator.Validate
}

func NewUserService(log *slog.Logger, users repositories.IUserRepository, clock contract.Clock) *UserService {
	return &UserService{log: log, users: users, clock: clock, validate: newValidator()}
}

// Register creates a user, an empty role means guest.
func (s *UserService) Register(displayName, email, role string) (domain.User, error) {
	request := registerUserRequest{DisplayName: displayName, Email: email, Role: role}
	if err := validate(s.validate, request); err != nil {
		return domain.User{}, err
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.NewUser(displayName, email, parsed, s.clock.Now().UTC())
	if err = s.users.CreateUser(user); err != nil {
		return domain.User{}, err
	}
	s.log.Info("User registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}
