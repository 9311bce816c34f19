package persistence

import (
	"context"

	"github.com/bizroot/backend/internal/domain/deal"
	"github.com/bizroot/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDealRepository implements deal.Repository using GORM
type GormDealRepository struct {
	db *gorm.DB
}

// NewGormDealRepository creates a new GormDealRepository
func NewGormDealRepository(db *gorm.DB) *GormDealRepository {
	return &GormDealRepository{db: db}
}

// FindActiveByOrganization returns every non-opportunity deal for the
// organization. Date-window and type filtering happens in the application
// layer against the embedded payment schedule, so only the columns the
// filter engine consumes are selected.
func (r *GormDealRepository) FindActiveByOrganization(ctx context.Context, organizationID uuid.UUID) ([]deal.Deal, error) {
	var dealModels []models.DealModel
	if err := r.db.WithContext(ctx).
		Model(&models.DealModel{}).
		Select("id", "organization_id", "client_id", "product_id", "amount", "status", "won_date", "installments").
		Where("organization_id = ? AND status <> ?", organizationID, deal.StatusOpportunity).
		Find(&dealModels).Error; err != nil {
		return nil, err
	}

	deals := make([]deal.Deal, len(dealModels))
	for i, model := range dealModels {
		deals[i] = *model.ToDomain()
	}
	return deals, nil
}
