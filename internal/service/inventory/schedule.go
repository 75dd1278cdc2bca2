package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/powerline/gridstock/internal/domain"
)

// ScheduleInput holds parameters for the ordering-schedule computation.
// Exactly one of NeedByDate or NeedByDates must be set: a single date fans
// out across Materials (all known kinds when empty), a per-material map
// gives each material its own date. LeadTimeOverrides wins over the
// per-kind defaults; non-positive overrides are ignored.
type ScheduleInput struct {
	NeedByDate        *time.Time
	Materials         []string
	NeedByDates       map[string]time.Time
	LeadTimeOverrides map[string]int
}

// Validate validates the schedule input.
func (i ScheduleInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.NeedByDate == nil && len(i.NeedByDates) == 0:
		errs = append(errs, domain.FieldError{Field: "need_by_date", Message: "provide either need_by_date or need_by_dates"})
	case i.NeedByDate != nil && len(i.NeedByDates) > 0:
		errs = append(errs, domain.FieldError{Field: "need_by_date", Message: "need_by_date and need_by_dates are mutually exclusive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ScheduleItem is one row of the computed ordering schedule.
type ScheduleItem struct {
	Material     string
	NeedByDate   time.Time
	LeadTimeDays int
	OrderDate    time.Time
}

// OrderingSchedule computes the latest safe order date per material:
// need-by date minus resolved lead time. Pure ledger-independent math.
// Items come back sorted by order date ascending.
func OrderingSchedule(input ScheduleInput) ([]ScheduleItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	resolve := func(material string) int {
		key := strings.ToLower(strings.TrimSpace(material))
		if days, ok := input.LeadTimeOverrides[key]; ok && days > 0 {
			return days
		}
		return domain.LeadTimeDays(key, fallbackLeadDaysThreshold)
	}

	var items []ScheduleItem
	if input.NeedByDate != nil {
		materials := input.Materials
		if len(materials) == 0 {
			for _, kind := range domain.AllMaterialKinds() {
				materials = append(materials, kind.String())
			}
		}
		for _, m := range materials {
			days := resolve(m)
			items = append(items, ScheduleItem{
				Material:     m,
				NeedByDate:   *input.NeedByDate,
				LeadTimeDays: days,
				OrderDate:    input.NeedByDate.AddDate(0, 0, -days),
			})
		}
	} else {
		for m, needBy := range input.NeedByDates {
			days := resolve(m)
			items = append(items, ScheduleItem{
				Material:     m,
				NeedByDate:   needBy,
				LeadTimeDays: days,
				OrderDate:    needBy.AddDate(0, 0, -days),
			})
		}
	}

	sort.Slice(items, func(a, b int) bool {
		if !items[a].OrderDate.Equal(items[b].OrderDate) {
			return items[a].OrderDate.Before(items[b].OrderDate)
		}
		return items[a].Material < items[b].Material
	})
	return items, nil
}
