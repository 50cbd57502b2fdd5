package commands

import (
	"context"
	"log/slog"
	"sort"

	"dealstream/internal/domain/offer"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/usecase/shared"
)

type CategoryRemap struct {
	From string
	To   offer.Category
	Rows int64
}

// MaintenanceCommands holds operator procedures that are not part of ingestion.
type MaintenanceCommands interface {
	RepairCategories(ctx context.Context) ([]CategoryRemap, error)
}

type maintenanceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMaintenanceCommands(uow shared.UnitOfWork) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow}
}

// RepairCategories rewrites legacy raw labels to canonical categories in one
// transaction.
func (m *maintenanceCommandsImpl) RepairCategories(ctx context.Context) ([]CategoryRemap, error) {
	labels := offer.LegacyCategoryLabels()
	froms := make([]string, 0, len(labels))
	for from := range labels {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	var remaps []CategoryRemap
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		remaps = remaps[:0]
		for _, from := range froms {
			to := labels[from]
			n, err := tx.Offers().RemapCategory(ctx, tx.DB(), from, to)
			if err != nil {
				return errs.Wrapf(err, "remap category %q", from)
			}
			remaps = append(remaps, CategoryRemap{From: from, To: to, Rows: n})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, r := range remaps {
		if r.Rows > 0 {
			slog.Info("category repaired", "from", r.From, "to", r.To.String(), "rows", r.Rows)
		}
	}
	return remaps, nil
}
