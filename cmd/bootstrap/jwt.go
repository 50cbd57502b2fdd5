package bootstrap

import (
	"time"

	"dealstream/internal/pkg/config"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrapf(err, "parse JWT_ACCESS_TOKEN_DURATION %q", cfg.JWT.AccessTokenDuration)
	}
	if ttl <= 0 {
		return nil, errs.Newf("JWT_ACCESS_TOKEN_DURATION must be positive, got %s", ttl)
	}
	if cfg.JWT.Secret == "" {
		return nil, errs.New("JWT_SECRET is empty")
	}

	return jwt.NewService(cfg.JWT.Secret, ttl, nil), nil
}
