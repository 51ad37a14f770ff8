package task

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"
)

// csvHeader is the fixed export column set. Order is part of the contract.
var csvHeader = []string{
	"id", "title", "description", "status", "priority", "taskDateTime",
	"assignedUsername", "createdByUsername", "decisionByUsername",
	"decisionAt", "createdAt", "updatedAt",
}

// Export renders the same listing as List into CSV. Fields containing commas,
// quotes or line breaks are quoted with doubled embedded quotes; null values
// render as empty strings. The filename carries the generation time.
func (s *Service) Export(ctx context.Context, input ListInput) (*ExportResult, error) {
	records, err := s.List(ctx, input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID.String(),
			r.Title,
			strOrEmpty(r.Description),
			r.Status.String(),
			r.Priority.String(),
			csvTime(r.TaskDateTime),
			r.AssignedUsername,
			r.CreatedByUsername,
			strOrEmpty(r.DecisionByUsername),
			csvTimePtr(r.DecisionAt),
			csvTime(r.CreatedAt),
			csvTime(r.UpdatedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row for task %s: %w", r.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	now := time.Now()
	return &ExportResult{
		Filename:    exportFilename(now),
		Data:        buf.Bytes(),
		GeneratedAt: now,
	}, nil
}

func exportFilename(t time.Time) string {
	return "tasks-" + t.Format("20060102-150405") + ".csv"
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func csvTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func csvTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return csvTime(*t)
}
