package services

import (
	"testing"
	"time"

	"github.com/mytodoapp/mytodo-api/internal/models"
	"github.com/mytodoapp/mytodo-api/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewAuthService(repository.NewUserRepository(db, 5*time.Second)), db
}

func TestAuthService_Signup(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Signup(SignupInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "supersecret", user.PasswordHash, "plaintext must never be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Signup(SignupInput{Name: " ", Email: "a@x.com", Password: "p"})
	require.ErrorIs(t, err, ErrMissingSignupFields)

	_, err = svc.Signup(SignupInput{Name: "A", Email: "a@x.com"})
	require.ErrorIs(t, err, ErrMissingSignupFields)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc, db := setupAuthService(t)

	input := SignupInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"}
	_, err := svc.Signup(input)
	require.NoError(t, err)

	_, err = svc.Signup(input)
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupAuthService(t)

	created, err := svc.Signup(SignupInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Signup(SignupInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_CorruptHash(t *testing.T) {
	svc, db := setupAuthService(t)

	user := &models.User{Name: "Broken", Email: "broken@example.com", PasswordHash: "not-a-bcrypt-hash"}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.Login(LoginInput{Email: "broken@example.com", Password: "anything"})
	require.ErrorIs(t, err, ErrCorruptCredential)
}

func TestAuthService_GetUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	created, err := svc.Signup(SignupInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	user, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)

	_, err = svc.GetUser(created.ID + 100)
	require.ErrorIs(t, err, ErrUserNotFound)
}
