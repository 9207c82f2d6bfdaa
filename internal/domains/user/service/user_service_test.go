package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram-backend/internal/domains/user"
	"foodgram-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailAlreadyExists
	}
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*user.User, int, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

type noSubscriptions struct{}

func (noSubscriptions) Subscribed(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return false, nil
}

func newTestService() (user.Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, noSubscriptions{}, jwt.NewManager("test-secret", 60)), repo
}

func registerRequest() user.RegisterRequest {
	return user.RegisterRequest{
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "supersecret1",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "chef", resp.Username)
	assert.False(t, resp.IsSubscribed)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "chef@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, resp.ID, login.User.ID)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "chef@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), user.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "chef@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token
	_, err = svc.Refresh(context.Background(), user.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Refresh(context.Background(), user.RefreshRequest{
		RefreshToken: "not-a-jwt",
	})
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "chef@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	delete(repo.byID, resp.ID)
	delete(repo.byEmail, "chef@example.com")

	_, err = svc.Refresh(context.Background(), user.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "otherchef"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "chef@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmailDoesNotLeak(t *testing.T) {
	svc, _ := newTestService()

	// Unknown email and wrong password must be indistinguishable
	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestSetPassword(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	err = svc.SetPassword(context.Background(), resp.ID, user.SetPasswordRequest{
		CurrentPassword: "supersecret1",
		NewPassword:     "evenmoresecret2",
	})
	require.NoError(t, err)

	// Old password no longer works
	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "chef@example.com",
		Password: "supersecret1",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "chef@example.com",
		Password: "evenmoresecret2",
	})
	assert.NoError(t, err)
}

func TestSetPasswordWrongCurrent(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	err = svc.SetPassword(context.Background(), resp.ID, user.SetPasswordRequest{
		CurrentPassword: "notthepassword",
		NewPassword:     "evenmoresecret2",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)
}
