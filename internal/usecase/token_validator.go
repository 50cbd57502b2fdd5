package usecase

import (
	"dealstream/internal/domain/user"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidPrincipal = errs.New("token carries no usable principal")

// Principal is the identity an access token vouches for.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     user.Role
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}
	if claims.UserID == uuid.Nil {
		return Principal{}, ErrInvalidPrincipal
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Mark(err, ErrInvalidPrincipal)
	}

	return Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     role,
	}, nil
}
