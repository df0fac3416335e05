package queries

import (
	"context"

	"projector-reservation/internal/domain/reservation"
	"projector-reservation/internal/pkg/errs"
)

type ReportReader interface {
	Report(ctx context.Context, filter ReportFilter) ([]*ReportRecord, error)
}

type ReportQueries interface {
	UsageReport(ctx context.Context, filter ReportFilter) ([]*ReportRecord, error)
}

type reportQueriesImpl struct {
	reservationRepo ReportReader
}

func NewReportQueries(reservationRepo ReportReader) ReportQueries {
	return &reportQueriesImpl{reservationRepo: reservationRepo}
}

// UsageReport lists reservations in the inclusive date range, optionally
// narrowed by exact area match and case-insensitive name substring.
func (r *reportQueriesImpl) UsageReport(ctx context.Context, filter ReportFilter) ([]*ReportRecord, error) {
	start, err := reservation.NewDate(filter.StartDate)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	end, err := reservation.NewDate(filter.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if end.String() < start.String() {
		return nil, errs.Mark(errs.New("end date before start date"), ErrValidation)
	}

	records, err := r.reservationRepo.Report(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return records, nil
}
