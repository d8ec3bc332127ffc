package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// Timestamps are stored as RFC3339 text in UTC, so stored values have
// second precision.

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return t, nil
}

// paginate appends LIMIT and OFFSET for positive values. SQLite rejects
// OFFSET without LIMIT, so an offset alone is paired with LIMIT -1.
func paginate(query *strings.Builder, args []any, limit, offset int) []any {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	return args
}
