package report

import (
	"context"
	"fmt"
	"freet/internal/common"
	"freet/internal/dbmongo"
	"freet/internal/dbmysql"
	"log"
)

// TakedownThreshold is the report count at which a freet is removed.
const TakedownThreshold = 10

type ReportStore interface {
	CreateReport(ctx context.Context, report *dbmongo.Report) error
	ExistsReport(ctx context.Context, reporterID, freetID int64) (bool, error)
	ListByFreet(ctx context.Context, freetID int64) ([]*dbmongo.Report, error)
	CountByFreet(ctx context.Context, freetID int64) (int64, error)
}

// ContentAccess is the slice of the freet service reports need: a viewable
// lookup for the access guard and a takedown hook. freet.FreetService
// satisfies it.
type ContentAccess interface {
	Get(ctx context.Context, viewerID, freetID int64) (*dbmysql.Freet, error)
	Remove(ctx context.Context, freetID int64) error
}

type ReportService interface {
	Report(ctx context.Context, reporterID, freetID int64) (*dbmongo.Report, error)
	FindAllByContent(ctx context.Context, viewerID, freetID int64) ([]*dbmongo.Report, error)
}

type reportService struct {
	reportStore ReportStore
	content     ContentAccess
}

func NewReportService(reportStore ReportStore, content ContentAccess) ReportService {
	return &reportService{reportStore: reportStore, content: content}
}

// Report files a report against a freet the reporter can view. The report
// that brings the count to the takedown threshold removes the freet (and,
// through the content cascade, its likes and reports).
func (s *reportService) Report(ctx context.Context, reporterID, freetID int64) (*dbmongo.Report, error) {
	if _, err := s.content.Get(ctx, reporterID, freetID); err != nil {
		return nil, err
	}

	exists, err := s.reportStore.ExistsReport(ctx, reporterID, freetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("you have already reported this freet: %w", common.ErrDuplicate)
	}

	rep := &dbmongo.Report{ReporterID: reporterID, FreetID: freetID}
	if err := s.reportStore.CreateReport(ctx, rep); err != nil {
		return nil, err
	}

	count, err := s.reportStore.CountByFreet(ctx, freetID)
	if err != nil {
		return nil, err
	}
	if count >= TakedownThreshold {
		log.Printf("freet %d reached %d reports, removing", freetID, count)
		if err := s.content.Remove(ctx, freetID); err != nil {
			return nil, err
		}
	}

	return rep, nil
}

// FindAllByContent lists the reports against a freet, gated by the same
// visibility check as the freet itself.
func (s *reportService) FindAllByContent(ctx context.Context, viewerID, freetID int64) ([]*dbmongo.Report, error) {
	if _, err := s.content.Get(ctx, viewerID, freetID); err != nil {
		return nil, err
	}
	return s.reportStore.ListByFreet(ctx, freetID)
}
