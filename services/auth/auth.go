// Package auth registers staff accounts and issues access tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/constants"
	"restaurant-pos/logger"
	"restaurant-pos/models/user"
	"restaurant-pos/types/apperror"
	authTypes "restaurant-pos/types/auth"
	"restaurant-pos/types/validation"
	"restaurant-pos/utils"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	DB       *gorm.DB
	Secret   string
	TokenTTL time.Duration
}

func NewService(db *gorm.DB, secret string, ttl time.Duration) *Service {
	return &Service{DB: db, Secret: secret, TokenTTL: ttl}
}

func (s *Service) Register(ctx context.Context, req *authTypes.RegisterRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.PhoneNumber)

	var count int64
	if err := s.DB.WithContext(ctx).Model(&user.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to check email")
	}
	if count > 0 {
		return nil, apperror.Validation("Email already registered")
	}
	if err := s.DB.WithContext(ctx).Model(&user.User{}).Where("phone_number = ?", phone).Count(&count).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to check phone number")
	}
	if count > 0 {
		return nil, apperror.Validation("Phone number already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to hash password")
	}
	company := req.Company
	if company == "" {
		company = "POS 8"
	}
	u := &user.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Role:         req.Role,
		Company:      company,
		Status:       "Active",
		Permissions:  user.StringSlice(constants.PermissionsForRole(req.Role)),
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to create user")
	}
	logger.Success(fmt.Sprintf("User registered: %s, role: %s", email, req.Role))
	return u, nil
}

// Login checks the password of the user with the given email or phone number
// and issues a token.
func (s *Service) Login(ctx context.Context, req *authTypes.LoginRequest) (*authTypes.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("%s", validation.Message(err))
	}
	identifier := strings.TrimSpace(req.Identifier)

	var u user.User
	err := s.DB.WithContext(ctx).
		Where("email = ? OR phone_number = ?", strings.ToLower(identifier), identifier).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warning("Invalid login attempt: " + identifier)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperror.Dependency(err, "failed to load user")
	}
	if !utils.CheckPassword(u.PasswordHash, req.Password) || u.Status != "Active" {
		logger.Warning("Invalid login attempt: " + identifier)
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueFor(&u)
	if err != nil {
		return nil, apperror.Dependency(err, "failed to issue token")
	}
	logger.Info(fmt.Sprintf("User logged in: %s, role: %s", u.Email, u.Role))
	return &authTypes.LoginResponse{
		Token:       token,
		UserID:      u.ID,
		FirstName:   u.FirstName,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: []string(u.Permissions),
	}, nil
}

// IssueFor signs a token carrying the user's role and permissions.
func (s *Service) IssueFor(u *user.User) (string, error) {
	perms := []string(u.Permissions)
	if len(perms) == 0 {
		perms = constants.PermissionsForRole(u.Role)
	}
	return utils.IssueToken(s.Secret, utils.TokenClaims{
		UserID:      u.ID,
		Username:    u.FirstName,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: perms,
	}, s.TokenTTL)
}

func (s *Service) ListUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := s.DB.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, apperror.Dependency(err, "failed to list users")
	}
	return users, nil
}

func (s *Service) DeleteUser(ctx context.Context, email string) error {
	res := s.DB.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Delete(&user.User{})
	if res.Error != nil {
		return apperror.Dependency(res.Error, "failed to delete user %s", email)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("user %s not found", email)
	}
	logger.Info("User deleted: " + email)
	return nil
}
