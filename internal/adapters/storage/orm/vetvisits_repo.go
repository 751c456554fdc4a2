package orm

import (
	"context"
	"fmt"

	"petpal/internal/domain/vetvisits"

	"gorm.io/gorm"
)

type vetVisitsRepo struct {
	db *gorm.DB
}

func (r *vetVisitsRepo) Create(ctx context.Context, v *vetvisits.VetVisit) error {
	rec := vetVisitRecord{
		Date:        v.Date,
		Description: v.Description,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create vet visit: %w", err)
	}
	*v = toVetVisit(rec)
	return nil
}

func (r *vetVisitsRepo) List(ctx context.Context) ([]vetvisits.VetVisit, error) {
	var recs []vetVisitRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list vet visits: %w", err)
	}

	out := make([]vetvisits.VetVisit, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toVetVisit(rec))
	}
	return out, nil
}

func toVetVisit(rec vetVisitRecord) vetvisits.VetVisit {
	return vetvisits.VetVisit{
		ID:          rec.ID,
		Date:        rec.Date,
		Description: rec.Description,
	}
}
