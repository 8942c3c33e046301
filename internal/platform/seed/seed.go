package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// seedUserID marks rows created by the seeder rather than a real user.
const seedUserID = "system"

// demoProducts are the starter egg varieties inserted into an empty database.
var demoProducts = []struct {
	name  string
	trays int
	loose int
}{
	{"White Large", 100, 0},
	{"White Medium", 80, 0},
	{"Brown Large", 50, 0},
	{"Brown Medium", 40, 0},
}

// SeedDemoProducts inserts the demo product catalogue when the products table
// is empty. It is a no-op on a database that already has products, so it is
// safe to run on every startup.
func SeedDemoProducts(ctx context.Context, logger *slog.Logger, productRepo portsrepo.ProductRepositoryFacade) error {
	count, err := productRepo.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Skipping demo product seed, products already exist", slog.Int("count", count))
		return nil
	}

	now := time.Now().UTC()
	for _, p := range demoProducts {
		product := domain.Product{
			ProductID:            uuid.NewString(),
			Name:                 p.name,
			CurrentStockQtyTrays: p.trays,
			CurrentStockQtyLoose: p.loose,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     seedUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: seedUserID,
			},
		}
		if err := productRepo.SaveProduct(ctx, product); err != nil {
			return err
		}
		logger.Info("Seeded demo product", slog.String("name", p.name), slog.Int("trays", p.trays))
	}

	return nil
}
