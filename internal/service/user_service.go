package service

import (
	"context"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/internal/dto"
	"github.com/notin-app/notin-service/pkg/app"
	"github.com/notin-app/notin-service/pkg/code"
	"github.com/notin-app/notin-service/pkg/timex"
	"github.com/notin-app/notin-service/pkg/util"

	"go.uber.org/zap"
)

// UserService defines the user business operations.
type UserService interface {
	// Register creates an account and returns it with a fresh token.
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error)

	// Login verifies credentials and returns the user with a fresh token.
	Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error)

	// ChangePassword replaces the password after verifying the old one.
	ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error

	// GetInfo returns the user's profile, nil when the user is gone.
	GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error)
}

type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

func (s *userService) domainToDTO(user *domain.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		UID:       user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Avatar:    user.Avatar,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}

func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error) {
	if s.config == nil || !s.config.User.RegisterIsEnable {
		return nil, code.ErrorUserRegisterIsDisable
	}

	if !util.IsValidUsername(params.Username) {
		return nil, code.ErrorUserUsernameNotValid
	}

	if params.Password != params.ConfirmPassword {
		return nil, code.ErrorUserPasswordNotMatch
	}

	if !util.IsValidPassword(params.Password) {
		return nil, code.ErrorUserPasswordNotValid
	}

	emailUser, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	if emailUser != nil {
		return nil, code.ErrorUserEmailAlreadyExists
	}

	nameUser, err := s.userRepo.GetByUsername(ctx, params.Username)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	if nameUser != nil {
		return nil, code.ErrorUserAlreadyExists
	}

	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorUserPasswordNotValid
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username: params.Username,
		Email:    params.Email,
		Password: password,
	})
	if err != nil {
		return nil, code.ErrorUserRegister.WithDetails(err.Error())
	}

	token, err := s.tokenManager.GenerateToken(user.ID, user.Username, "")
	if err != nil {
		return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
	}

	result := s.domainToDTO(user)
	result.Token = token
	return result, nil
}

func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error) {
	var user *domain.User
	var err error

	// Credentials may be an email or a username. Lookup failures map to
	// the same error as a wrong password so account existence leaks
	// nothing.
	if util.IsValidEmail(params.Credentials) {
		user, err = s.userRepo.GetByEmail(ctx, params.Credentials)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, params.Credentials)
	}
	if err != nil || user == nil {
		return nil, code.ErrorUserLoginPasswordFailed
	}

	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserLoginPasswordFailed
	}

	token, err := s.tokenManager.GenerateToken(user.ID, user.Username, clientIP)
	if err != nil {
		return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
	}

	result := s.domainToDTO(user)
	result.Token = token
	return result, nil
}

func (s *userService) ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error {
	if params.Password != params.ConfirmPassword {
		return code.ErrorUserPasswordNotMatch
	}

	if !util.IsValidPassword(params.Password) {
		return code.ErrorUserPasswordNotValid
	}

	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return code.ErrorDBQuery
	}
	if user == nil {
		return code.ErrorUserNotFound
	}

	if !util.CheckPasswordHash(user.Password, params.OldPassword) {
		return code.ErrorUserOldPasswordFailed
	}

	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return code.ErrorUserPasswordNotValid
	}

	return s.userRepo.UpdatePassword(ctx, uid, password)
}

func (s *userService) GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		s.logger.Error("UserService.GetInfo failed",
			zap.Int64("uid", uid),
			zap.Error(err),
		)
		return nil, code.ErrorDBQuery
	}
	return s.domainToDTO(user), nil
}

var _ UserService = (*userService)(nil)
