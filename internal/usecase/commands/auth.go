package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"dealstream/internal/domain/user"
	"dealstream/internal/infra"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/pkg/jwt"
	"dealstream/internal/pkg/password"
	"dealstream/internal/usecase/shared"
)

var (
	ErrUserExists           = errs.New("email already exists")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("incorrect password")
	ErrInvalidInput         = errs.New("invalid input")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// AdminPolicy decides which usernames receive the admin role at login.
type AdminPolicy interface {
	IsAdmin(username string) bool
}

type LoginResult struct {
	UserID      uuid.UUID
	Username    string
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, username, plainPassword string) (uuid.UUID, error)
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	admins     AdminPolicy
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, admins AdminPolicy) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		admins:     admins,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, username, plainPassword string) (uuid.UUID, error) {
	credentials, err := user.NewCredentials(username, plainPassword)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	hash, err := password.HashPassword(credentials.Password.Value())
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return uuid.Nil, errs.Mark(err, ErrInvalidInput)
		}
		return uuid.Nil, err
	}

	newUser := user.NewUser(credentials.Username, hash)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Reads().UsernameTaken(ctx, credentials.Username.Value())
		if err != nil {
			return err
		}
		if taken {
			return ErrUserExists
		}
		return tx.Users().Create(ctx, tx.DB(), newUser)
	})
	if err != nil {
		// lost a race with a concurrent registration
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrUserExists
		}
		return uuid.Nil, err
	}

	return newUser.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	name := user.NormalizeUsername(username)
	if name == "" || plainPassword == "" {
		return nil, ErrInvalidInput
	}

	creds, err := a.uow.CommandReads().UserByUsername(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := user.RoleFor(creds.Username, a.isAdmin)

	token, err := a.jwtService.GenerateAccessToken(creds.ID, creds.Username, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      creds.ID,
		Username:    creds.Username,
		Role:        role,
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) isAdmin(username string) bool {
	return a.admins != nil && a.admins.IsAdmin(username)
}
