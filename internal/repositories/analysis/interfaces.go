package analysis

import (
	"context"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

// Repo defines the interface for analysis repository operations
type Repo interface {
	Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error)
	Get(ctx context.Context, tenantID, id string) (*models.Analysis, error)
	GetByDocumentHash(ctx context.Context, tenantID, documentHash string) (*models.Analysis, error)
	List(ctx context.Context, tenantID string, limit int) ([]models.Analysis, error)
	Delete(ctx context.Context, tenantID, id string) error
}
