package source

import (
	"context"
	"fmt"
	"time"

	"github.com/gridworks/tabular/internal/logging"
	"github.com/gridworks/tabular/internal/table"
)

// Service loads record collections for registered pages.
type Service struct {
	db DBTX

	// maxRows caps how many rows one fetch will load.
	maxRows int

	// queryTimeout bounds each fetch query.
	queryTimeout time.Duration
}

// NewService creates a Service over a database handle.
func NewService(db DBTX, maxRows int, queryTimeout time.Duration) *Service {
	return &Service{
		db:           db,
		maxRows:      maxRows,
		queryTimeout: queryTimeout,
	}
}

// Records runs the page's query and converts the result set into engine
// records. Column names in the result become record field names.
func (s *Service) Records(ctx context.Context, p Page) ([]table.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	start := time.Now()

	rows, err := s.db.Query(ctx, p.Query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.Key, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, fd := range fields {
		names[i] = string(fd.Name)
	}

	var records []table.Record
	for rows.Next() {
		if len(records) >= s.maxRows {
			logging.FromContext(ctx).Warn("fetch truncated at row cap",
				"page", p.Key,
				"max_rows", s.maxRows,
			)
			break
		}

		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("fetch %s: read row: %w", p.Key, err)
		}

		rec := make(table.Record, len(names))
		for i, name := range names {
			rec[name] = normalizeValue(values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.Key, err)
	}

	logging.FromContext(ctx).Debug("fetched records",
		"page", p.Key,
		"rows", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return records, nil
}
