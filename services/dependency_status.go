package services

import (
	"github.com/appinventory/models"
)

// ComputeDependencyStatus derives the status of a validity window at a given
// date. First match wins:
//
//  1. the window has not started yet          -> NOT_YET_VALID
//  2. no end date                             -> ACTIVE (indefinite)
//  3. the end date has passed                 -> EXPIRED
//  4. the end date is within the lead window  -> EXPIRING
//  5. otherwise                               -> ACTIVE
//
// The repository search predicate mirrors these branches in SQL; keep the
// two in sync.
func ComputeDependencyStatus(start, end *models.Date, today models.Date) string {
	if start != nil && today.Before(start.Time) {
		return models.DependencyStatusNotYetValid
	}
	if end == nil {
		return models.DependencyStatusActive
	}
	if today.After(end.Time) {
		return models.DependencyStatusExpired
	}
	if today.DaysUntil(*end) <= models.ExpiringWindowDays {
		return models.DependencyStatusExpiring
	}
	return models.DependencyStatusActive
}

// IsDependencyActive reports whether a status counts as usable today.
func IsDependencyActive(status string) bool {
	return status == models.DependencyStatusActive || status == models.DependencyStatusExpiring
}

// DaysUntilExpiration returns the whole days remaining until the end date,
// or nil when there is no end date or it has already passed.
func DaysUntilExpiration(end *models.Date, today models.Date) *int {
	if end == nil {
		return nil
	}
	if today.After(end.Time) {
		return nil
	}
	days := today.DaysUntil(*end)
	return &days
}
