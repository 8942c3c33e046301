package mapping

import (
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/eggkhata/egg_khata_app/internal/models"
)

// ToModelDailyBoardRate converts a domain DailyBoardRate to a model row
func ToModelDailyBoardRate(d domain.DailyBoardRate) models.DailyBoardRate {
	return models.DailyBoardRate{
		RateID:      d.RateID,
		Date:        d.Date,
		EggType:     d.EggType,
		RatePerEgg:  d.RatePerEgg,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyBoardRate converts a model row to a domain DailyBoardRate
func ToDomainDailyBoardRate(m models.DailyBoardRate) domain.DailyBoardRate {
	return domain.DailyBoardRate{
		RateID:      m.RateID,
		Date:        m.Date,
		EggType:     m.EggType,
		RatePerEgg:  m.RatePerEgg,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDailyBoardRateSlice converts a slice of model rows to domain rates
func ToDomainDailyBoardRateSlice(ms []models.DailyBoardRate) []domain.DailyBoardRate {
	ds := make([]domain.DailyBoardRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailyBoardRate(m)
	}
	return ds
}
