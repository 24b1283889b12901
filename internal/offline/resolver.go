// Package offline answers health queries purely from the bundled dataset,
// without any network access.
package offline

import (
	"arogya-mitr/internal/dataset"
	"arogya-mitr/internal/triage"
)

// Resolver composes the keyword classifier, the dataset store and the
// response formatters into a single query-to-text function. It is
// deterministic: identical arguments always produce identical output.
type Resolver struct {
	store *dataset.Store
}

func NewResolver(store *dataset.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve answers a free-text query from the bundled table. The first
// matching record wins (declaration order, no ranking); emergency formatting
// is used when forced by the caller or when the query contains an emergency
// keyword.
func (r *Resolver) Resolve(query string, lang dataset.Language, forceEmergency bool) string {
	emergency := forceEmergency || triage.IsEmergency(query)

	matches := r.store.FindDiseases(query, lang)
	if len(matches) == 0 {
		return NotFound(lang)
	}

	d := matches[0]
	if emergency {
		return FormatEmergencyInfo(d, lang)
	}
	return FormatGeneralInfo(d, lang)
}

// MedicineInfo renders offline medicine suggestions for a common ailment.
func (r *Resolver) MedicineInfo(ailment string, lang dataset.Language) string {
	category, known := AilmentCategory(ailment)
	var meds []dataset.Medicine
	if known {
		meds = r.store.FindMedicinesByCategory(category)
	}
	return FormatMedicineInfo(ailment, meds, known, lang)
}
