package contracts

import (
	"clinicdesk-service/internal/app/models"
	"context"
)

type HistoryRepository interface {
	CreateHistory(ctx context.Context, record *models.HistoryRecord) (historyID string, err error)
	FindAllByArchivedAtDesc(ctx context.Context) ([]models.HistoryRecord, error)
}

// ArchiveService persists the immutable patient+bill+prescription snapshot
// when a bill transitions into paid. A failure here must abort the
// transition; archival is a post-condition of "paid", not a side effect.
type ArchiveService interface {
	Archive(ctx context.Context, bill *models.Bill) (*models.HistoryRecord, error)
	ListHistory(ctx context.Context) ([]models.HistoryRecord, error)
}
