// Package importer turns a decoded CSV batch into persisted records with
// individually observable outcomes. Records are persisted one at a time in
// input order; a failing record never aborts the batch.
package importer

import (
	"context"

	"github.com/itam-labs/assetdesk/pkg/composables"
)

// Outcome is the result of persisting one record of a batch.
type Outcome struct {
	Index int    `json:"index"`
	Error string `json:"error,omitempty"`
}

// Report aggregates per-record outcomes. Submitted counts every decoded
// record; Succeeded only those the store accepted.
type Report struct {
	Submitted int       `json:"submitted"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Outcomes  []Outcome `json:"outcomes,omitempty"`
}

func (r *Report) Partial() bool {
	return r.Failed > 0 && r.Succeeded > 0
}

// RunBatch persists records sequentially through persist. Failures are logged
// and recorded; only failed outcomes are kept to bound the response size.
func RunBatch[T any](ctx context.Context, records []T, persist func(context.Context, T) error) *Report {
	logger := composables.UseLogger(ctx)
	report := &Report{Submitted: len(records)}

	for i, record := range records {
		if err := persist(ctx, record); err != nil {
			logger.WithError(err).Warnf("import: record %d failed", i)
			report.Failed++
			report.Outcomes = append(report.Outcomes, Outcome{Index: i, Error: err.Error()})
			continue
		}
		report.Succeeded++
	}

	return report
}
