package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "user logged in successfully"
	MessageSuccessRefreshToken  = "token refreshed successfully"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedRefreshToken  = "failed to refresh token"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password should be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrWrongPassword      = errors.New("wrong password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

const (
	PointsPerCollection = 10
	PointsPerLevel      = 100
)

type (
	User struct {
		ID           string      `json:"id"`
		Name         string      `json:"name"`
		Email        string      `json:"email"`
		Phone        string      `json:"phone"`
		Role         string      `json:"role"`
		Organization string      `json:"organization,omitempty"`
		ProfileImage string      `json:"profile_image,omitempty"`
		Verified     bool        `json:"verified"`
		JoinedAt     time.Time   `json:"joined_at"`
		Points       int         `json:"points"`
		Badges       []Badge     `json:"badges"`
		Preferences  Preferences `json:"preferences"`
		Stats        UserStats   `json:"stats"`
	}

	Preferences struct {
		Dietary       []string `json:"dietary"`
		Notifications bool     `json:"notifications"`
		Radius        float64  `json:"radius"`
	}

	UserStats struct {
		FoodListed    int `json:"food_listed"`
		FoodCollected int `json:"food_collected"`
		ImpactScore   int `json:"impact_score"`
	}

	Badge struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Icon        string    `json:"icon"`
		Color       string    `json:"color"`
		EarnedAt    time.Time `json:"earned_at"`
	}

	// Progress is an increment to a user's points and stats, with the
	// badges it earned.
	Progress struct {
		UserID string
		Points int
		Stats  UserStats
		Badges []Badge
	}

	UserResponse struct {
		User
		Level           int `json:"level"`
		NextLevelPoints int `json:"next_level_points"`
	}

	RegisterRequest struct {
		Email           string `json:"email" validate:"required,email"`
		Name            string `json:"name" validate:"required,max=255"`
		Password        string `json:"password" validate:"required,min=6"`
		PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
		Role            string `json:"role" validate:"required,oneof=FoodProvider NGO/Volunteer Individual Admin"`
		Organization    string `json:"organization" validate:"omitempty,max=255"`
		Phone           string `json:"phone" validate:"omitempty,phone"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	RefreshRequest struct {
		Refresh string `json:"refresh" validate:"required"`
	}

	UpdateProfileRequest struct {
		Name         *string  `json:"name" validate:"omitempty,max=255"`
		Phone        *string  `json:"phone" validate:"omitempty,phone"`
		Organization *string  `json:"organization" validate:"omitempty,max=255"`
		ProfileImage *string  `json:"profile_image" validate:"omitempty,url"`
		Dietary      []string `json:"dietary" validate:"omitempty,dive,required"`
		Notify       *bool    `json:"notifications"`
		Radius       *float64 `json:"radius" validate:"omitempty,gte=0,lte=100"`
	}

	AuthResponse struct {
		User    UserResponse `json:"user"`
		Access  string       `json:"access"`
		Refresh string       `json:"refresh"`
	}

	RefreshResponse struct {
		Access string `json:"access"`
	}
)

func (u User) Level() int {
	return u.Points/PointsPerLevel + 1
}

func (u User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		User:            u,
		Level:           u.Level(),
		NextLevelPoints: u.Level() * PointsPerLevel,
	}
}
