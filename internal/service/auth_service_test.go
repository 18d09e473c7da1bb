package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/config"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/dto"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubUserRepo is an in-memory UserRepository keyed by lowercase email.
type stubUserRepo struct {
	byEmail map[string]*model.User
	byID    map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[uuid.UUID]*model.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byEmail[strings.ToLower(u.Email)] = u
	r.byID[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var users []model.User
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.byEmail[strings.ToLower(u.Email)] = u
	r.byID[u.ID] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func buildAuthSvc() (AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8, JWTRefreshHours: 24}
	return NewAuthService(repo, cfg), repo
}

func seedUser(repo *stubUserRepo, email, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 4)
	u := &model.User{Name: "Test User", Email: email, PasswordHash: string(hash), Role: role}
	_ = repo.Create(context.Background(), u)
	return u
}

func TestLogin_Success(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "alice@example.com", "secret123", model.RoleAdministrator)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RoleAdministrator, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "alice@example.com", "secret123", model.RoleStaff)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "bob@example.com", "secret123", model.RoleStaff)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "bob@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "bob@example.com", refreshed.User.Email)
}

func TestRefresh_Garbage(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorContains(t, err, "invalid or expired")
}

func TestResolve_RoleReflectsDatabase(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUser(repo, "carol@example.com", "secret123", model.RoleStaff)

	session, err := svc.Resolve(context.Background(), "carol@example.com")
	require.NoError(t, err)
	assert.False(t, session.IsAdmin)

	// Promote; the next resolve must see the new role immediately
	u.Role = model.RoleAdministrator
	session, err = svc.Resolve(context.Background(), "carol@example.com")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, repo := buildAuthSvc()
	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name: "Dave", Email: "dave@example.com", Password: "secret123", Role: model.RoleStaff,
	})
	require.NoError(t, err)

	stored, err := repo.FindByEmail(context.Background(), "dave@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.Equal(t, model.RoleStaff, resp.Role)
}

func TestSubscribe_ReceivesAuthEvents(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "eve@example.com", "secret123", model.RoleStaff)

	events, cancel := svc.Subscribe()
	defer cancel()

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "eve@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	ev := <-events
	assert.Equal(t, "signed_in", ev.Type)
	assert.Equal(t, "eve@example.com", ev.Email)

	svc.Logout(context.Background(), "eve@example.com")
	ev = <-events
	assert.Equal(t, "signed_out", ev.Type)
}

func TestSubscribe_CancelStopsDelivery(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUser(repo, "frank@example.com", "secret123", model.RoleStaff)

	events, cancel := svc.Subscribe()
	cancel()

	svc.Logout(context.Background(), "frank@example.com")
	_, open := <-events
	assert.False(t, open)
}
