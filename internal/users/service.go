package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/bibagei/Hudoleev-kursovaya/internal/config"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Default credentials created when no users snapshot exists.
const (
	DefaultAdminLogin    = "admin"
	DefaultAdminPassword = "admin"
)

// Store is the external durability contract for accounts.
type Store interface {
	LoadUsers() ([]*user.User, error)
	SaveUsers([]*user.User) error
}

type Service struct {
	repo   *Repository
	store  Store
	logger logger.Logger
	config *config.Config
}

func NewService(repo *Repository, store Store, logger logger.Logger, config *config.Config) (*Service, error) {
	if repo == nil {
		return nil, errors.New("nil dependency: repository")
	}
	if store == nil {
		return nil, errors.New("nil dependency: store")
	}
	if config == nil {
		return nil, errors.New("nil dependency: config")
	}
	return &Service{repo: repo, store: store, logger: logger, config: config}, nil
}

// Load populates the repository from the store. A missing snapshot
// bootstraps a default admin account so the first login is possible.
func (s *Service) Load(ctx context.Context) error {
	items, err := s.store.LoadUsers()
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return s.bootstrap()
		}
		return fmt.Errorf("load users: %w", err)
	}

	s.repo.Reset(items)
	s.logger.Infof("loaded %d users", len(items))
	return nil
}

func (s *Service) bootstrap() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), s.config.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	admin := &user.User{
		ID:       uuid.NewString(),
		Login:    DefaultAdminLogin,
		Password: string(hash),
		Role:     user.RoleAdmin,
	}

	s.repo.Reset([]*user.User{admin})
	if err = s.store.SaveUsers(s.repo.All()); err != nil {
		return fmt.Errorf("bootstrap users: %w", err)
	}

	s.logger.Infof("users snapshot not found, created default admin %q", DefaultAdminLogin)
	return nil
}

// Authenticate verifies the credentials and returns the account.
// Wrong login and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*user.User, error) {
	if err := validateCredential("login", login); err != nil {
		return nil, err
	}
	if err := validateCredential("password", password); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByLogin(login)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user %q: %w", login, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare passwords: %w", err)
	}

	s.logger.With("login", u.Login).Info("user logged in")
	return u, nil
}

// Register creates a new account with a hashed password and saves.
func (s *Service) Register(ctx context.Context, login, password string, role user.Role) (*user.User, error) {
	if err := validateCredential("login", login); err != nil {
		return nil, err
	}
	if err := validateCredential("password", password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:       uuid.NewString(),
		Login:    login,
		Password: string(hash),
		Role:     role,
	}
	if err = s.repo.Add(u); err != nil {
		return nil, err
	}

	s.logger.With("login", login, "role", string(role)).Info("user added")
	return u, s.saveAfterMutation()
}

// ChangePassword replaces the account's password hash. Editing your
// own account is not allowed.
func (s *Service) ChangePassword(ctx context.Context, id, password string) error {
	if err := s.guardSelf(ctx, id); err != nil {
		return err
	}
	if err := validateCredential("password", password); err != nil {
		return err
	}

	u, err := s.repo.Get(id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u.Password = string(hash)
	s.logger.With("login", u.Login).Info("user password changed")
	return s.saveAfterMutation()
}

// ChangeRole replaces the account's role. Editing your own account is
// not allowed.
func (s *Service) ChangeRole(ctx context.Context, id string, role user.Role) error {
	if err := s.guardSelf(ctx, id); err != nil {
		return err
	}

	u, err := s.repo.Get(id)
	if err != nil {
		return err
	}

	u.Role = role
	s.logger.With("login", u.Login, "role", string(role)).Info("user role changed")
	return s.saveAfterMutation()
}

// Remove deletes the account. Deleting your own account is not
// allowed.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.guardSelf(ctx, id); err != nil {
		return err
	}

	u, err := s.repo.Get(id)
	if err != nil {
		return err
	}

	if err = s.repo.Remove(id); err != nil {
		return err
	}

	s.logger.With("login", u.Login).Info("user removed")
	return s.saveAfterMutation()
}

// List returns the live ordered collection.
func (s *Service) List() []*user.User {
	return s.repo.All()
}

func (s *Service) guardSelf(ctx context.Context, id string) error {
	if current, ok := user.FromContext(ctx); ok && current.ID == id {
		return &errs.ValidationError{Field: "user", Message: "you cannot modify your own account"}
	}
	return nil
}

func (s *Service) saveAfterMutation() error {
	if err := s.store.SaveUsers(s.repo.All()); err != nil {
		s.logger.Errorf("users snapshot save failed, memory and disk diverge: %s", err)
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func validateCredential(field, value string) error {
	if value == "" {
		return &errs.ValidationError{Field: field, Message: "must not be empty"}
	}
	max := user.MaxLoginLength
	if field == "password" {
		max = user.MaxPasswordLength
	}
	if len(value) > max {
		return &errs.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", max),
		}
	}
	return nil
}
