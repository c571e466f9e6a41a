package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"purrfect/models"
	"purrfect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // id -> user
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return errors.New("duplicate key error")
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByRole(ctx context.Context, role string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return errors.New("not found")
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func newUserService(t *testing.T) (*DefaultUserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return &DefaultUserService{Repo: repo, Logger: zaptest.NewLogger(t)}, repo
}

func registerReq() RegisterRequest {
	return RegisterRequest{
		Name:     "Wanjiku Kamau",
		Email:    "wanjiku@example.com",
		Password: "s3cret-pass",
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newUserService(t)

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, models.RolePetOwner, resp.User.Role)
	assert.Equal(t, "wanjiku@example.com", resp.User.Email)
	assert.NotEqual(t, "s3cret-pass", resp.User.PasswordHash)
	require.NotEmpty(t, resp.Token)

	sub, role, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, sub)
	assert.Equal(t, models.RolePetOwner, role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	req := registerReq()
	req.Name = "Another Person"
	_, err = svc.Register(context.Background(), req)

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newUserService(t)

	req := registerReq()
	req.Email = "  Wanjiku@Example.COM "
	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "wanjiku@example.com", resp.User.Email)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserService(t)
	var vErr *ValidationError

	req := registerReq()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	require.ErrorAs(t, err, &vErr)

	req = registerReq()
	req.Role = models.RoleAdmin
	_, err = svc.Register(context.Background(), req)
	require.ErrorAs(t, err, &vErr)
}

func TestLogin(t *testing.T) {
	svc, _ := newUserService(t)
	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "wanjiku@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newUserService(t)
	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	var aErr *AuthError
	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "wanjiku@example.com",
		Password: "wrong-password",
	})
	require.ErrorAs(t, err, &aErr)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	require.ErrorAs(t, err, &aErr)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newUserService(t)
	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), resp.User.ID, UpdateProfileRequest{
		Phone: "0712345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "0712345678", updated.Phone)
	assert.Equal(t, "Wanjiku Kamau", updated.Name)
}
