package linkage

import "github.com/octobees/leads-outreach/api/internal/entity"

// IndexStatuses maps status records by company key. The store keeps keys
// unique; if a duplicate slips through, the first record is kept.
func IndexStatuses(records []entity.OutreachStatus) map[string]entity.OutreachStatus {
	index := make(map[string]entity.OutreachStatus, len(records))
	for _, record := range records {
		if _, exists := index[record.CompanyKey]; exists {
			continue
		}
		index[record.CompanyKey] = record
	}
	return index
}
