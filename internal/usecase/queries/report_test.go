//go:build unit

package queries_test

import (
	"context"
	"testing"

	"projector-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	records   []*queries.ReportRecord
	gotFilter queries.ReportFilter
}

func (f *fakeReportRepo) Report(_ context.Context, filter queries.ReportFilter) ([]*queries.ReportRecord, error) {
	f.gotFilter = filter
	return f.records, nil
}

func TestUsageReport(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the filter through", func(t *testing.T) {
		area := "Mathematics"
		name := "maria"
		repo := &fakeReportRepo{records: []*queries.ReportRecord{
			{ID: uuid.New(), Date: "2026-03-10", Slots: []int{1}, UserName: "Maria Silva"},
		}}
		q := queries.NewReportQueries(repo)

		records, err := q.UsageReport(ctx, queries.ReportFilter{
			StartDate:     "2026-03-01",
			EndDate:       "2026-03-31",
			Area:          &area,
			ProfessorName: &name,
		})
		require.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, &area, repo.gotFilter.Area)
		assert.Equal(t, &name, repo.gotFilter.ProfessorName)
	})

	t.Run("single day range is allowed", func(t *testing.T) {
		q := queries.NewReportQueries(&fakeReportRepo{})

		_, err := q.UsageReport(ctx, queries.ReportFilter{StartDate: "2026-03-10", EndDate: "2026-03-10"})
		assert.NoError(t, err)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		q := queries.NewReportQueries(&fakeReportRepo{})

		tests := []struct {
			name   string
			filter queries.ReportFilter
		}{
			{name: "invalid start", filter: queries.ReportFilter{StartDate: "03-01-2026", EndDate: "2026-03-31"}},
			{name: "invalid end", filter: queries.ReportFilter{StartDate: "2026-03-01", EndDate: "soon"}},
			{name: "inverted range", filter: queries.ReportFilter{StartDate: "2026-03-31", EndDate: "2026-03-01"}},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := q.UsageReport(ctx, tc.filter)
				assert.ErrorIs(t, err, queries.ErrValidation)
			})
		}
	})
}
