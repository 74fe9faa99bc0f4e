package service

import (
	"context"
	"testing"
	"time"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/internal/dto"
	"github.com/notin-app/notin-service/pkg/app"
	"github.com/notin-app/notin-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*domain.User{}}
}

func (r *memUserRepo) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	return r.users[uid], nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.users[stored.ID] = &stored
	return &stored, nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, uid int64, passwordHash string) error {
	if u, ok := r.users[uid]; ok {
		u.Password = passwordHash
	}
	return nil
}

func newTestUserService(repo domain.UserRepository, registerEnabled bool) UserService {
	tm := app.NewTokenManager("test-secret", "notin-service", time.Hour)
	return NewUserService(repo, tm, zap.NewNop(), &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: registerEnabled},
	})
}

func validRegisterRequest() *dto.UserCreateRequest {
	return &dto.UserCreateRequest{
		Email:           "alice@example.com",
		Username:        "alice",
		Password:        "Sup3rSecret!x",
		ConfirmPassword: "Sup3rSecret!x",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestUserService(repo, true)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "alice", registered.Username)

	// Password hash must never equal the plaintext.
	assert.NotEqual(t, "Sup3rSecret!x", repo.users[registered.UID].Password)

	byEmail, err := svc.Login(ctx, &dto.UserLoginRequest{
		Credentials: "alice@example.com",
		Password:    "Sup3rSecret!x",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, byEmail.Token)

	byName, err := svc.Login(ctx, &dto.UserLoginRequest{
		Credentials: "alice",
		Password:    "Sup3rSecret!x",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, registered.UID, byName.UID)
}

func TestRegisterDisabled(t *testing.T) {
	svc := newTestUserService(newMemUserRepo(), false)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, code.ErrorUserRegisterIsDisable)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := newTestUserService(newMemUserRepo(), true)

	for _, password := range []string{
		"short1!A", // exactly 8 chars, satisfies the policy
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigitsHere!",
		"NoSpecial123A",
		"Sh0rt!A",
	} {
		req := validRegisterRequest()
		req.Password = password
		req.ConfirmPassword = password
		_, err := svc.Register(context.Background(), req)
		if password == "short1!A" {
			require.NoError(t, err, "password %q should satisfy the policy", password)
			continue
		}
		assert.ErrorIs(t, err, code.ErrorUserPasswordNotValid, "password %q", password)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService(newMemUserRepo(), true)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	dup := validRegisterRequest()
	dup.Username = "bob_2"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, code.ErrorUserEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestUserService(newMemUserRepo(), true)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{
		Credentials: "alice",
		Password:    "WrongPass1!x",
	}, "")
	assert.ErrorIs(t, err, code.ErrorUserLoginPasswordFailed)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{
		Credentials: "ghost",
		Password:    "WrongPass1!x",
	}, "")
	assert.ErrorIs(t, err, code.ErrorUserLoginPasswordFailed)
}

func TestChangePassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestUserService(repo, true)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, registered.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "Sup3rSecret!x",
		Password:        "N3wSecret!yz",
		ConfirmPassword: "N3wSecret!yz",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{
		Credentials: "alice",
		Password:    "N3wSecret!yz",
	}, "")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, registered.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "Sup3rSecret!x",
		Password:        "An0ther!pass",
		ConfirmPassword: "An0ther!pass",
	})
	assert.ErrorIs(t, err, code.ErrorUserOldPasswordFailed)
}
