// Package aggregate derives per-subject percentage columns.
package aggregate

import "github.com/orayew2002/attendance-report/domain"

// PercentagePlaces is the rounding precision of per-subject percentages.
const PercentagePlaces = 2

// Derive computes theory and, when present, lab percentages for every record.
func Derive(t *domain.SubjectTable) *domain.DerivedSubjectTable {
	derived := &domain.DerivedSubjectTable{
		Subject: t.Subject,
		Source:  t.Source,
		HasLab:  t.HasLab,
		Records: make([]domain.DerivedRecord, 0, t.Len()),
	}

	for _, rec := range t.Records() {
		d := domain.DerivedRecord{
			SubjectRecord:    rec,
			TheoryPercentage: domain.Percentage(rec.Attended, rec.TotalTheory, PercentagePlaces),
		}
		if t.HasLab {
			d.LabPercentage = domain.Percentage(rec.LabAttended, rec.Lab, PercentagePlaces)
		}
		derived.Records = append(derived.Records, d)
	}

	return derived
}
