package user

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/Prathapkumar-67/aptitude-website/internal/auth"
	"github.com/Prathapkumar-67/aptitude-website/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, code string) (*AuthResponse, error)
	Me(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

// Register always creates a student. Boss accounts are provisioned directly
// in the database.
func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	taken, err := s.repo.ExistsByUsername(dto.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         RoleStudent,
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.Infof("Registered new student %s", u.ID)
	return s.issueToken(&u)
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.Permission("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, apperror.Permission("invalid credentials")
	}

	if err := s.repo.TouchLastLogin(u.ID); err != nil {
		log.WithError(err).Warn("Failed to record last login")
	}

	return s.issueToken(u)
}

// GoogleLogin exchanges the OAuth code and signs the user in, creating a
// student account on first login.
func (s *userService) GoogleLogin(ctx context.Context, code string) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	info, err := auth.ExchangeGoogleCode(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google login failed")
		return nil, apperror.Permission("google authentication failed")
	}

	u, err := s.repo.FindByEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			Username: info.Name,
			Email:    info.Email,
			Role:     RoleStudent,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user from google login")
			return nil, err
		}
		log.Infof("Registered new student %s via google", u.ID)
	}

	if err := s.repo.TouchLastLogin(u.ID); err != nil {
		log.WithError(err).Warn("Failed to record last login")
	}

	return s.issueToken(u)
}

func (s *userService) Me(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("user not found")
	}
	resp := s.toResponse(u)
	return &resp, nil
}

func (s *userService) issueToken(u *User) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), auth.TokenDuration)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: s.toResponse(u)}, nil
}

func (s *userService) toResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
