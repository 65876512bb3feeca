package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/store"
	"github.com/shashiranjanraj/fruitfuel/pkg/logger"
)

// DefaultName is used when the login form leaves the name blank.
const DefaultName = "John Doe"

// AuthService simulates sign-in. Nothing is checked: logging in just puts a
// user with the given name and email into the store.
type AuthService struct {
	store StateStore
	newID func() string
}

func NewAuthService(st StateStore) *AuthService {
	return &AuthService{store: st, newID: uuid.NewString}
}

// Login signs in a customer. Any previous user, and their membership, is replaced.
func (s *AuthService) Login(name, email string) (models.User, error) {
	return s.LoginAs(name, email, models.RoleCustomer)
}

// LoginAs signs in with an explicit role.
func (s *AuthService) LoginAs(name, email string, role models.Role) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	user := models.User{
		ID:    s.newID(),
		Name:  name,
		Email: strings.TrimSpace(email),
		Role:  role,
	}
	if err := s.store.Dispatch(store.Login(user)); err != nil {
		return models.User{}, err
	}
	logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Logout clears the user. The cart is kept.
func (s *AuthService) Logout() error {
	return s.store.Dispatch(store.Logout())
}

// Current returns the logged-in user, if any.
func (s *AuthService) Current() (models.User, bool) {
	return s.store.State().User.Get()
}
