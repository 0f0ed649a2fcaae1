package users

import (
	"context"
	"testing"

	"github.com/bibagei/Hudoleev-kursovaya/internal/config"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockStore struct {
	items   []*user.User
	loadErr error
	saveErr error
	saves   int
}

func (m *mockStore) LoadUsers() ([]*user.User, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items, nil
}

func (m *mockStore) SaveUsers(users []*user.User) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = users
	return nil
}

func newTestService(t *testing.T) (*Service, *mockStore) {
	t.Helper()
	store := &mockStore{}
	// bcrypt.MinCost keeps the tests fast.
	cfg := &config.Config{PasswordHashCost: bcrypt.MinCost}
	s, err := NewService(NewRepository(), store, logger.NewNop(), cfg)
	require.NoError(t, err)
	return s, store
}

func TestService_LoadBootstrapsDefaultAdmin(t *testing.T) {
	s, store := newTestService(t)
	store.loadErr = errs.ErrNotFound

	require.NoError(t, s.Load(context.Background()))

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, DefaultAdminLogin, list[0].Login)
	assert.Equal(t, user.RoleAdmin, list[0].Role)
	assert.Equal(t, 1, store.saves)

	// The bootstrap password must work through the regular login path.
	u, err := s.Authenticate(context.Background(), DefaultAdminLogin, DefaultAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, u.ID)
}

func TestService_RegisterAndAuthenticate(t *testing.T) {
	s, _ := newTestService(t)

	created, err := s.Register(context.Background(), "masha", "secret", user.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// Never the plaintext password.
	assert.NotEqual(t, "secret", created.Password)

	got, err := s.Authenticate(context.Background(), "masha", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.Authenticate(context.Background(), "masha", "wrong")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = s.Authenticate(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestService_RegisterValidation(t *testing.T) {
	s, _ := newTestService(t)

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "empty login", login: "", password: "secret"},
		{name: "empty password", login: "masha", password: ""},
		{name: "oversize login", login: "a-very-long-login", password: "secret"},
		{name: "oversize password", login: "masha", password: "a-very-long-password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.login, tt.password, user.RoleUser)
			var vErr *errs.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestService_RegisterDuplicateLogin(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Register(context.Background(), "masha", "secret", user.RoleUser)
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "masha", "other", user.RoleAdmin)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Len(t, s.List(), 1)
}

func TestService_CannotModifyOwnAccount(t *testing.T) {
	s, _ := newTestService(t)

	me, err := s.Register(context.Background(), "admin2", "secret", user.RoleAdmin)
	require.NoError(t, err)

	ctx := user.NewContext(context.Background(), me)

	var vErr *errs.ValidationError
	assert.ErrorAs(t, s.Remove(ctx, me.ID), &vErr)
	assert.ErrorAs(t, s.ChangePassword(ctx, me.ID, "newpass"), &vErr)
	assert.ErrorAs(t, s.ChangeRole(ctx, me.ID, user.RoleUser), &vErr)
	assert.Len(t, s.List(), 1)
}

func TestService_ChangePasswordAndRole(t *testing.T) {
	s, _ := newTestService(t)

	admin, err := s.Register(context.Background(), "root", "secret", user.RoleAdmin)
	require.NoError(t, err)
	other, err := s.Register(context.Background(), "petya", "secret", user.RoleUser)
	require.NoError(t, err)

	ctx := user.NewContext(context.Background(), admin)

	require.NoError(t, s.ChangePassword(ctx, other.ID, "fresh"))
	_, err = s.Authenticate(context.Background(), "petya", "fresh")
	require.NoError(t, err)
	_, err = s.Authenticate(context.Background(), "petya", "secret")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	require.NoError(t, s.ChangeRole(ctx, other.ID, user.RoleAdmin))
	got, err := s.repo.Get(other.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, got.Role)
}

func TestService_RemoveUser(t *testing.T) {
	s, store := newTestService(t)

	admin, err := s.Register(context.Background(), "root", "secret", user.RoleAdmin)
	require.NoError(t, err)
	other, err := s.Register(context.Background(), "petya", "secret", user.RoleUser)
	require.NoError(t, err)

	ctx := user.NewContext(context.Background(), admin)
	require.NoError(t, s.Remove(ctx, other.ID))

	assert.Len(t, s.List(), 1)
	assert.Len(t, store.items, 1)

	assert.ErrorIs(t, s.Remove(ctx, other.ID), errs.ErrNotFound)
}

func TestRepository_Capacity(t *testing.T) {
	repo := NewRepository()
	for i := 0; i < MaxUsers; i++ {
		require.NoError(t, repo.Add(&user.User{
			ID:    string(rune('a' + i)),
			Login: string(rune('a'+i)) + "-login",
			Role:  user.RoleUser,
		}))
	}

	err := repo.Add(&user.User{ID: "extra", Login: "extra"})
	assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
	assert.Equal(t, MaxUsers, repo.Len())
}
