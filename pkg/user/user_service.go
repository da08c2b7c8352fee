package user

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/permission"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		RefreshToken(ctx context.Context, req domain.RefreshRequest) (domain.RefreshResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error)
		GetUserByID(ctx context.Context, userID string) (domain.User, error)
		SaveProgress(ctx context.Context, progress domain.Progress) error
		CountUsers(ctx context.Context) (int64, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		logger         *zap.Logger
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, logger *zap.Logger) UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return domain.AuthResponse{}, domain.ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return domain.AuthResponse{}, domain.ErrWeakPassword
	}
	if req.Password != req.PasswordConfirm {
		return domain.AuthResponse{}, domain.ErrPasswordMismatch
	}
	if !permission.IsKnownRole(req.Role) {
		return domain.AuthResponse{}, domain.ErrInvalidRole
	}

	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
		Organization: req.Organization,
		Notify:       true,
		Radius:       5,
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.AuthResponse{}, fmt.Errorf("register user: %w", err)
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))

	return s.authResponse(*user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return domain.AuthResponse{}, domain.ErrInvalidEmail
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrUserNotFound
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrWrongPassword
	}
	return s.authResponse(*user)
}

func (s *userService) RefreshToken(ctx context.Context, req domain.RefreshRequest) (domain.RefreshResponse, error) {
	userID, _, err := s.jwtService.GetUserIDByRefreshToken(req.Refresh)
	if err != nil {
		return domain.RefreshResponse{}, err
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RefreshResponse{}, domain.ErrTokenInvalid
		}
		return domain.RefreshResponse{}, err
	}

	access, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Role)
	if err != nil {
		return domain.RefreshResponse{}, err
	}
	return domain.RefreshResponse{Access: access}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return domain.NewUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Organization != nil {
		user.Organization = *req.Organization
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.Dietary != nil {
		user.Dietary = req.Dietary
	}
	if req.Notify != nil {
		user.Notify = *req.Notify
	}
	if req.Radius != nil {
		user.Radius = *req.Radius
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, fmt.Errorf("update user: %w", err)
	}
	return domain.NewUserResponse(toDomain(*user)), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	return toDomain(*user), nil
}

// SaveProgress adds the progress increments to the stored counters in one
// statement and stores any badges the user does not hold yet.
func (s *userService) SaveProgress(ctx context.Context, progress domain.Progress) error {
	user, err := s.find(ctx, progress.UserID)
	if err != nil {
		return err
	}

	stats := progress.Stats
	err = s.userRepository.AddProgress(ctx, user.ID.String(), progress.Points, stats.FoodListed, stats.FoodCollected, stats.ImpactScore)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	held := make(map[string]bool, len(user.Badges))
	for _, b := range user.Badges {
		held[b.Name] = true
	}
	var fresh []entities.UserBadge
	for _, b := range progress.Badges {
		if held[b.Name] {
			continue
		}
		held[b.Name] = true
		fresh = append(fresh, entities.UserBadge{
			ID:          uuid.New(),
			UserID:      user.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			Color:       b.Color,
			EarnedAt:    b.EarnedAt,
		})
	}
	if err := s.userRepository.AddBadges(ctx, fresh); err != nil {
		return fmt.Errorf("save badges: %w", err)
	}
	return nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepository.CountUsers(ctx)
}

func (s *userService) find(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrUserNotFound
	}
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) authResponse(user entities.User) (domain.AuthResponse, error) {
	access, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Role)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.jwtService.GenerateRefreshToken(user.ID.String(), user.Role)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}
	return domain.AuthResponse{
		User:    domain.NewUserResponse(toDomain(user)),
		Access:  access,
		Refresh: refresh,
	}, nil
}

func toDomain(e entities.User) domain.User {
	u := domain.User{
		ID:           e.ID.String(),
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Role:         e.Role,
		Organization: e.Organization,
		ProfileImage: e.ProfileImage,
		Verified:     e.Verified,
		JoinedAt:     e.CreatedAt,
		Points:       e.Points,
		Badges:       make([]domain.Badge, 0, len(e.Badges)),
		Preferences: domain.Preferences{
			Dietary:       append([]string{}, e.Dietary...),
			Notifications: e.Notify,
			Radius:        e.Radius,
		},
		Stats: domain.UserStats{
			FoodListed:    e.FoodListed,
			FoodCollected: e.FoodCollected,
			ImpactScore:   e.ImpactScore,
		},
	}
	for _, b := range e.Badges {
		u.Badges = append(u.Badges, domain.Badge{
			ID:          b.ID.String(),
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			Color:       b.Color,
			EarnedAt:    b.EarnedAt,
		})
	}
	return u
}
