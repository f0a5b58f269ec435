package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"terraverse/internal/adapter/repo/gorm/model"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

type ResourceNodeRepo struct {
	db *gorm.DB
}

func NewResourceNodeRepo(db *gorm.DB) ResourceNodeRepo {
	return ResourceNodeRepo{db: db}
}

func (r ResourceNodeRepo) ListAvailable(ctx context.Context) ([]terra.ResourceNode, error) {
	var rows []model.ResourceNode
	err := getDBFromCtx(ctx, r.db).
		Where("remaining > 0").
		Order("node_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]terra.ResourceNode, 0, len(rows))
	for _, m := range rows {
		out = append(out, terra.ResourceNode{
			ID:        m.NodeID,
			Position:  geo.Coordinate{Lat: m.Lat, Lng: m.Lng},
			Remaining: m.Remaining,
		})
	}
	return out, nil
}
