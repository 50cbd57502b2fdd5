//go:build unit

package repository

import (
	"context"

	sqlc "dealstream/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockOfferWriteQueries struct {
	mock.Mock
}

func (m *MockOfferWriteQueries) InsertOfferIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOfferIfAbsentParams) (sqlc.InsertOfferIfAbsentRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.InsertOfferIfAbsentRow), args.Error(1)
}

func (m *MockOfferWriteQueries) RemapOfferCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.RemapOfferCategoryParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

// mockDBTX is never called; queries are mocked above it.
type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}
