package reporting

import (
	"time"

	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

func sale(month, day int, amount float64, orders int, salesperson string) domain.SalesRecord {
	return domain.SalesRecord{
		Date:        time.Date(2024, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Amount:      amount,
		OrderCount:  orders,
		Salesperson: salesperson,
	}
}

func target(month int, initial, monthly, accumulated *float64) domain.MonthlyTarget {
	return domain.MonthlyTarget{
		Month:             month,
		MonthName:         domain.MonthName(month),
		InitialTarget:     initial,
		MonthlyTarget:     monthly,
		AccumulatedTarget: accumulated,
	}
}

func period(month int, amount float64, accumulated *float64) domain.AggregatedPeriod {
	return domain.AggregatedPeriod{
		Month:             month,
		MonthLabel:        domain.MonthLabel(month),
		TotalAmount:       amount,
		AccumulatedTarget: accumulated,
	}
}

var ptr = utils.FloatPtr
