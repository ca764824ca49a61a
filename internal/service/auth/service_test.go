package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtService/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}

	f.nextID++
	created := *user
	created.ID = f.nextID
	f.byEmail[user.Email] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func newService(repo UserRepository) *Service {
	return NewService(repo, "test-secret", 168*time.Hour, nopLogger{})
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Maria",
		Email:    "Maria@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "USER", resp.User.Role)
	// Email нормализуется к нижнему регистру
	assert.Equal(t, "maria@example.com", resp.User.Email)

	// Пароль хранится только в виде bcrypt-хеша
	stored := repo.byEmail["maria@example.com"]
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "secret123")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newService(newFakeUserRepo())

	req := &models.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc := newService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{Name: "A", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "maria@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// Токен валидируется и несет claims пользователя
	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "maria@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Неизвестный email дает ту же ошибку
	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_Invalid(t *testing.T) {
	svc := newService(newFakeUserRepo())

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Токен с чужой подписью отклоняется
	other := NewService(newFakeUserRepo(), "other-secret", time.Hour, nopLogger{})
	resp, err := other.Register(context.Background(), &models.RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
