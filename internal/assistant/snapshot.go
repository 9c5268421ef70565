package assistant

import (
	"context"
	"errors"

	"github.com/chandru-wp/portfolio-server/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadSnapshot fans out the five content queries concurrently and collects
// them into a Snapshot. A missing profile is not an error; any store
// failure aborts the whole load.
func LoadSnapshot(ctx context.Context, db *gorm.DB) (Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var p models.Profile
		err := db.WithContext(ctx).Order("created_at desc").First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		snap.Profile = &p
		return nil
	})
	g.Go(func() error {
		return db.WithContext(ctx).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Find(&snap.Skills).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Find(&snap.Experience).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Find(&snap.Education).Error
	})
	g.Go(func() error {
		return db.WithContext(ctx).Order("created_at desc").Find(&snap.Projects).Error
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
