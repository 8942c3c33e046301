package pgsql

import (
	portsrepo "github.com/eggkhata/egg_khata_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	contactRepo := newPgxContactRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	rateRepo := newPgxRateRepository(dbPool)
	postingRepo := newPgxPostingRepository(dbPool, contactRepo, productRepo)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ContactRepo:   contactRepo,
		ProductRepo:   productRepo,
		RateRepo:      rateRepo,
		PostingRepo:   postingRepo,
		ReportingRepo: reportingRepo,
		UserRepo:      userRepo,
	}
}
