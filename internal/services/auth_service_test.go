package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByResetToken(token string) (*models.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// TestMain is used to set up the test environment.
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

const testJWTSecret = "test_jwt_secret"

func registerInput() services.RegisterInput {
	return services.RegisterInput{
		FirstName:       "Hana",
		LastName:        "Tanaka",
		Email:           "hana@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	input := registerInput()

	// Successful registration stores a bcrypt hash, not the password.
	mockRepo.On("GetByEmail", input.Email).Return(nil, apperror.NotFound("User with email %s not found", input.Email)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.RegisterUser(input)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, input.Password, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)))
	mockRepo.AssertExpectations(t)

	// Mismatched confirmation is rejected before any lookup.
	bad := registerInput()
	bad.ConfirmPassword = "different"
	_, err = authService.RegisterUser(bad)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))

	// Duplicate email.
	mockRepo.On("GetByEmail", input.Email).Return(&models.User{ID: "existing"}, nil).Once()
	_, err = authService.RegisterUser(input)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "hana@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	// Successful login issues a token carrying id, email and role.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.LoginUser(user.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, "admin", claims["role"])
	mockRepo.AssertExpectations(t)

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.LoginUser(user.Email, "wrongpassword")
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	// Unknown email reports the same generic failure.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, apperror.NotFound("User with email nobody@example.com not found")).Once()
	_, err = authService.LoginUser("nobody@example.com", "password123")
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	assert.Contains(t, err.Error(), "Invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"email":   "hana@example.com",
		"role":    "user",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "user", claims["role"])

	// Garbage token.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	// Expired token.
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestAuthService_ForgotPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	user := &models.User{ID: "user-123", Email: "hana@example.com"}

	// Known email: a token and expiry are stored.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.ResetPasswordToken != "" && u.ResetPasswordExpires != nil
	})).Return(nil).Once()

	assert.NoError(t, authService.ForgotPassword(user.Email))
	mockRepo.AssertExpectations(t)

	// Unknown email: still succeeds, nothing stored.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, apperror.NotFound("User with email nobody@example.com not found")).Once()
	assert.NoError(t, authService.ForgotPassword("nobody@example.com"))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	expires := time.Now().Add(30 * time.Minute)
	user := &models.User{
		ID:                   "user-123",
		Email:                "hana@example.com",
		ResetPasswordToken:   "valid-token",
		ResetPasswordExpires: &expires,
	}

	// Valid token: password replaced, token cleared.
	mockRepo.On("GetByResetToken", "valid-token").Return(user, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.ResetPasswordToken == "" && u.ResetPasswordExpires == nil &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpassword")) == nil
	})).Return(nil).Once()

	assert.NoError(t, authService.ResetPassword("valid-token", "newpassword"))
	mockRepo.AssertExpectations(t)

	// Unknown token.
	mockRepo.On("GetByResetToken", "bogus").Return(nil, apperror.NotFound("Reset token not found")).Once()
	err := authService.ResetPassword("bogus", "newpassword")
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))

	// Expired token.
	pastExpiry := time.Now().Add(-time.Minute)
	expired := &models.User{ID: "user-456", ResetPasswordToken: "stale", ResetPasswordExpires: &pastExpiry}
	mockRepo.On("GetByResetToken", "stale").Return(expired, nil).Once()
	err = authService.ResetPassword("stale", "newpassword")
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Password: string(hashedPassword)}

	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()
	assert.NoError(t, authService.ChangePassword(user.ID, "oldpassword", "newpassword"))
	mockRepo.AssertExpectations(t)

	// Wrong current password.
	stale, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	user2 := &models.User{ID: "user-456", Password: string(stale)}
	mockRepo.On("GetByID", user2.ID).Return(user2, nil).Once()
	err := authService.ChangePassword(user2.ID, "not-the-password", "newpassword")
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	mockRepo.AssertExpectations(t)
}
