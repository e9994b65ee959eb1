package services

import (
	"utsav/internal/config"
	"utsav/internal/models/session_models"
	"utsav/pkg/utils"
)

// AllocationServiceInterface divides a total budget across vendor
// categories. Stateless; callers recompute in full whenever the total or
// the split mode changes.
type AllocationServiceInterface interface {
	Allocate(eventTypeID string, total int64, mode config.SplitMode) ([]session_models.AllocationEntry, error)
}

type AllocationService struct {
	cfg *config.PlannerConfig
}

func NewAllocationService(cfg *config.PlannerConfig) AllocationServiceInterface {
	return &AllocationService{cfg: cfg}
}

func (s *AllocationService) Allocate(eventTypeID string, total int64, mode config.SplitMode) ([]session_models.AllocationEntry, error) {
	if total <= 0 {
		return nil, utils.ErrInvalidBudget
	}

	table, ok := s.cfg.Percentages[eventTypeID]
	if !ok || len(table) == 0 {
		table = s.cfg.DefaultTable
	}

	if mode == config.SplitEqual {
		return equalSplit(table, total), nil
	}
	return proportionalSplit(table, total), nil
}

// proportionalSplit floors every share and hands the whole rounding
// remainder to the single highest-percentage category, ties broken by
// table position. The amounts always sum to exactly the total.
func proportionalSplit(table config.PercentageTable, total int64) []session_models.AllocationEntry {
	out := make([]session_models.AllocationEntry, 0, len(table))
	var allocated int64
	topIdx := 0
	for i, row := range table {
		amount := int64(row.Percent) * total / 100
		out = append(out, session_models.AllocationEntry{Category: row.Category, Amount: amount})
		allocated += amount
		if row.Percent > table[topIdx].Percent {
			topIdx = i
		}
	}
	out[topIdx].Amount += total - allocated
	return out
}

// equalSplit divides the total evenly over the categories with a nonzero
// percentage; the last one in table order absorbs the integer remainder.
func equalSplit(table config.PercentageTable, total int64) []session_models.AllocationEntry {
	var relevant []string
	for _, row := range table {
		if row.Percent > 0 {
			relevant = append(relevant, row.Category)
		}
	}
	if len(relevant) == 0 {
		return nil
	}

	count := int64(len(relevant))
	share := total / count
	out := make([]session_models.AllocationEntry, 0, count)
	for i, category := range relevant {
		amount := share
		if i == len(relevant)-1 {
			amount = total - share*(count-1)
		}
		out = append(out, session_models.AllocationEntry{Category: category, Amount: amount})
	}
	return out
}
