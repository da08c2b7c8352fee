package jwt

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	DefaultAccessTTL  = 120 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

type (
	JWTService interface {
		GenerateAccessToken(userID string, role string) (string, error)
		GenerateRefreshToken(userID string, role string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, string, error)
		GetUserIDByRefreshToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		UserID    string `json:"user_id"`
		Role      string `json:"role"`
		TokenType string `json:"token_type"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey  string
		issuer     string
		accessTTL  time.Duration
		refreshTTL time.Duration
		now        func() time.Time
	}
)

func NewJWTService() JWTService {
	return NewJWTServiceWithSecret(
		utils.GetConfig("JWT_SECRET"),
		durationConfig("ACCESS_TOKEN_TTL", DefaultAccessTTL),
		durationConfig("REFRESH_TOKEN_TTL", DefaultRefreshTTL),
	)
}

func NewJWTServiceWithSecret(secret string, accessTTL, refreshTTL time.Duration) JWTService {
	return &jwtService{
		secretKey:  secret,
		issuer:     "FOODSHARE",
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func durationConfig(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(utils.GetConfig(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func (j *jwtService) GenerateAccessToken(userID string, role string) (string, error) {
	return j.generate(userID, role, TokenTypeAccess, j.accessTTL)
}

func (j *jwtService) GenerateRefreshToken(userID string, role string) (string, error) {
	return j.generate(userID, role, TokenTypeRefresh, j.refreshTTL)
}

func (j *jwtService) generate(userID, role, tokenType string, ttl time.Duration) (string, error) {
	now := j.now()
	claims := jwtUserClaim{
		userID,
		role,
		tokenType,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, string, error) {
	return j.claims(token, TokenTypeAccess)
}

func (j *jwtService) GetUserIDByRefreshToken(token string) (string, string, error) {
	return j.claims(token, TokenTypeRefresh)
}

func (j *jwtService) claims(token string, tokenType string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	if claims.TokenType != tokenType {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.UserID, claims.Role, nil
}
