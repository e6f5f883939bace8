package service

import (
	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	PrefsRepo *repository.PreferencesRepository
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, prefsRepo *repository.PreferencesRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		PrefsRepo: prefsRepo,
		Cfg:       cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}

	// 注册即建默认偏好，后续统计接口直接可用
	_, err = s.PrefsRepo.FindOrCreateByUserID(user.ID)
	return err
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
