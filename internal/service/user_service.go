package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/pkg/consts"
	"Orion/internal/pkg/redis"
	"Orion/internal/pkg/security"
	"Orion/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, tokenString string) error
	GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// Register 注册并直接签发 Token
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error) {
	exist, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrUserEmailExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
		IsActive: true,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResultDTO{Token: token, User: toUserDTO(user)}, nil
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResultDTO{Token: token, User: toUserDTO(user)}, nil
}

// Logout 将 Token 签名挂进 Redis 吊销表，TTL 取 Token 剩余有效期
func (s *userServiceImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := security.ValidateToken(tokenString)
	if err != nil {
		// Token 本就无效，无需吊销
		return nil
	}

	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, "revoked", ttl)
}

func (s *userServiceImpl) GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	d := &dto.UserDTO{}
	_ = copier.Copy(d, user)
	return d
}
