package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/repositories"
)

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
	resetTTL   time.Duration // Lifetime of password-reset tokens
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, resetTTL time.Duration) *AuthService {
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
		resetTTL:   resetTTL,
	}
}

// RegisterUser registers a new user, hashes their password, and saves them
// to the database. New accounts always get the plain user role.
func (s *AuthService) RegisterUser(input RegisterInput) (*models.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, apperror.Invalid("Password and confirm password do not match")
	}

	if existing, err := s.userRepo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, apperror.Conflict("Email %s already exists", input.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     input.Email,
		Password:  string(hashedPassword),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      models.RoleUser,
		Status:    models.UserActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates a user by email and returns a JWT token if
// successful. Failures are reported uniformly so callers cannot probe
// which emails exist.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperror.Unauthorized("Invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperror.Unauthorized("Unauthorized access. Please authenticate to proceed")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperror.Unauthorized("Unauthorized access. Please authenticate to proceed")
}

// ForgotPassword stores a fresh reset token on the account. It reports
// success whether or not the email exists so accounts cannot be
// enumerated; actual mail delivery happens elsewhere.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			log.Printf("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expires := time.Now().Add(s.resetTTL)
	user.ResetPasswordToken = token
	user.ResetPasswordExpires = &expires
	return s.userRepo.Update(user)
}

// ResetPassword consumes a reset token and sets a new password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return apperror.Invalid("Password must be at least 6 characters")
	}

	user, err := s.userRepo.GetByResetToken(token)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return apperror.Invalid("Invalid or expired reset token")
		}
		return err
	}
	if user.ResetPasswordExpires == nil || time.Now().After(*user.ResetPasswordExpires) {
		return apperror.Invalid("Invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil
	return s.userRepo.Update(user)
}

// ChangePassword verifies the current password and replaces it.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return apperror.Invalid("Password must be at least 6 characters")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	return s.userRepo.Update(user)
}

// generateResetToken returns a 64-char hex token from a CSPRNG.
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
