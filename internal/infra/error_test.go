//go:build unit

package infra_test

import (
	"testing"

	"dealstream/internal/infra"
	"dealstream/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classifies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, want: infra.KindDuplicateKey},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}, want: infra.KindDBFailure},
		{name: "plain error", err: errs.New("conn reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errs.New("conn reset"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("select", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "select")
		})
	}
}

func TestIsKind_SurvivesWrapping(t *testing.T) {
	err := errs.Wrap(infra.WrapRepoErr("insert offer", pgx.ErrNoRows), "ingest")

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.False(t, infra.IsKind(errs.New("unrelated"), infra.KindNotFound))
}
