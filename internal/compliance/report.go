package compliance

import (
	"time"
)

// Report is the aggregate compliance summary over the whole store.
type Report struct {
	// ReportDate is when the report was generated.
	ReportDate string `json:"report_date"`

	// TotalTransactions is the number of stored records.
	TotalTransactions int `json:"total_transactions"`

	// StatusBreakdown counts records grouped by status value.
	StatusBreakdown map[string]int `json:"status_breakdown"`

	// ComplianceRate is the percentage of records with status
	// StatusCompliant, 0 on an empty store.
	ComplianceRate float64 `json:"compliance_rate"`
}

// BuildReport tallies all records in a single pass: total count, a
// histogram of status values, and the compliance rate as a percentage.
// The max(total, 1) denominator keeps the empty store at rate 0 instead
// of dividing by zero.
func BuildReport(records []Transaction, now time.Time) Report {
	breakdown := make(map[string]int)
	for _, tx := range records {
		breakdown[tx.Status()]++
	}

	total := len(records)
	denom := total
	if denom < 1 {
		denom = 1
	}

	return Report{
		ReportDate:        now.Format(time.RFC3339),
		TotalTransactions: total,
		StatusBreakdown:   breakdown,
		ComplianceRate:    float64(breakdown[StatusCompliant]) / float64(denom) * 100,
	}
}
