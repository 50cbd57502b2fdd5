//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealstream/internal/domain/user"
	"dealstream/internal/infra"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/pkg/jwt"
	"dealstream/internal/pkg/password"
	"dealstream/internal/usecase/commands"
	"dealstream/internal/usecase/shared"
	commandsmock "dealstream/tests/mock/commands"
	sharedmock "dealstream/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	users    *sharedmock.MockUserRepository
	admins   *commandsmock.MockAdminPolicy
	jwt      *jwt.Service
	auth     commands.AuthCommands
	hash     string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.users = sharedmock.NewMockUserRepository(s.mockCtrl)
	s.admins = commandsmock.NewMockAdminPolicy(s.mockCtrl)
	s.jwt = jwt.NewService(testSecret, time.Hour, nil)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.auth = commands.NewAuthCommands(s.uow, s.jwt, s.admins)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister_Success() {
	s.reads.EXPECT().UsernameTaken(gomock.Any(), "alice@example.com").Return(false, nil)

	var created *user.User
	s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) error {
			created = u
			return nil
		})

	id, err := s.auth.Register(context.Background(), "  Alice@Example.com ", "password123")

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Equal(created.ID(), id)
	s.Equal("alice@example.com", created.Username().Value())
	s.NoError(password.ComparePassword(created.PasswordHash(), "password123"))
}

func (s *AuthCommandsTestSuite) TestRegister_UsernameTaken() {
	s.reads.EXPECT().UsernameTaken(gomock.Any(), "alice@example.com").Return(true, nil)
	s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.auth.Register(context.Background(), "alice@example.com", "password123")

	s.True(errs.Is(err, commands.ErrUserExists))
}

func (s *AuthCommandsTestSuite) TestRegister_ConcurrentDuplicate() {
	s.reads.EXPECT().UsernameTaken(gomock.Any(), gomock.Any()).Return(false, nil)
	s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("failed to create user", errors.New("unique"), infra.KindDuplicateKey))

	_, err := s.auth.Register(context.Background(), "alice@example.com", "password123")

	s.True(errs.Is(err, commands.ErrUserExists))
}

func (s *AuthCommandsTestSuite) TestRegister_InvalidInput() {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "not an email", username: "alice", password: "password123"},
		{name: "empty username", username: "", password: "password123"},
		{name: "short password", username: "alice@example.com", password: "short"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.auth.Register(context.Background(), tt.username, tt.password)
			s.True(errs.Is(err, commands.ErrInvalidInput))
		})
	}
}

func (s *AuthCommandsTestSuite) TestLogin_Success() {
	userID := uuid.New()
	s.uow.EXPECT().CommandReads().Return(s.reads)
	s.reads.EXPECT().UserByUsername(gomock.Any(), "root@example.com").
		Return(&shared.UserCredentials{ID: userID, Username: "root@example.com", PasswordHash: s.hash}, nil)
	s.admins.EXPECT().IsAdmin("root@example.com").Return(true)

	result, err := s.auth.Login(context.Background(), "Root@example.com", "password123")

	s.Require().NoError(err)
	s.Equal(userID, result.UserID)
	s.Equal(user.RoleAdmin, result.Role)

	claims, err := s.jwt.ValidateToken(result.AccessToken)
	s.Require().NoError(err)
	s.Equal(userID, claims.UserID)
	s.Equal("admin", claims.Role)
}

func (s *AuthCommandsTestSuite) TestLogin_ViewerByDefault() {
	s.uow.EXPECT().CommandReads().Return(s.reads)
	s.reads.EXPECT().UserByUsername(gomock.Any(), gomock.Any()).
		Return(&shared.UserCredentials{ID: uuid.New(), Username: "bob@example.com", PasswordHash: s.hash}, nil)
	s.admins.EXPECT().IsAdmin("bob@example.com").Return(false)

	result, err := s.auth.Login(context.Background(), "bob@example.com", "password123")

	s.Require().NoError(err)
	s.Equal(user.RoleViewer, result.Role)
}

func (s *AuthCommandsTestSuite) TestLogin_UnknownUser() {
	s.uow.EXPECT().CommandReads().Return(s.reads)
	s.reads.EXPECT().UserByUsername(gomock.Any(), "ghost").
		Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	_, err := s.auth.Login(context.Background(), "ghost", "password123")

	s.True(errs.Is(err, commands.ErrUserNotFound))
}

func (s *AuthCommandsTestSuite) TestLogin_WrongPassword() {
	s.uow.EXPECT().CommandReads().Return(s.reads)
	s.reads.EXPECT().UserByUsername(gomock.Any(), gomock.Any()).
		Return(&shared.UserCredentials{ID: uuid.New(), Username: "bob@example.com", PasswordHash: s.hash}, nil)

	_, err := s.auth.Login(context.Background(), "bob@example.com", "wrong-password")

	s.True(errs.Is(err, commands.ErrInvalidCredentials))
}

func (s *AuthCommandsTestSuite) TestLogin_EmptyInput() {
	_, err := s.auth.Login(context.Background(), "  ", "")

	s.True(errs.Is(err, commands.ErrInvalidInput))
}
