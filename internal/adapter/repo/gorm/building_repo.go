package gormrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"terraverse/internal/adapter/repo/gorm/model"
	"terraverse/internal/app/ports"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

type BuildingRepo struct {
	db *gorm.DB
}

func NewBuildingRepo(db *gorm.DB) BuildingRepo {
	return BuildingRepo{db: db}
}

func (r BuildingRepo) Create(ctx context.Context, b terra.Building) error {
	m := model.Building{
		BuildingID:        b.ID,
		OwnerAgentID:      b.OwnerAgentID,
		TypeCode:          string(b.TypeCode),
		Lat:               b.Position.Lat,
		Lng:               b.Position.Lng,
		IsTerritoryCenter: b.IsTerritoryCenter,
		TerritoryRadiusKm: b.TerritoryRadiusKm,
		ParentBuildingID:  b.ParentBuildingID,
		LastCollectedAt:   b.LastCollectedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func (r BuildingRepo) ListByOwner(ctx context.Context, ownerAgentID string) ([]terra.Building, error) {
	var rows []model.Building
	err := getDBFromCtx(ctx, r.db).
		Where("owner_agent_id = ?", ownerAgentID).
		Order("building_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return buildingsFromModels(rows), nil
}

func (r BuildingRepo) ListCentersByOwner(ctx context.Context, ownerAgentID string) ([]terra.Building, error) {
	var rows []model.Building
	err := getDBFromCtx(ctx, r.db).
		Where("owner_agent_id = ? AND is_territory_center", ownerAgentID).
		Order("building_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return buildingsFromModels(rows), nil
}

func (r BuildingRepo) CountByOwnerAndType(ctx context.Context, ownerAgentID string, code terra.BuildingCode) (int64, error) {
	var n int64
	err := getDBFromCtx(ctx, r.db).Model(&model.Building{}).
		Where("owner_agent_id = ? AND type_code = ?", ownerAgentID, string(code)).
		Count(&n).Error
	return n, err
}

func (r BuildingRepo) UpdateLastCollected(ctx context.Context, buildingID string, at time.Time) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Building{}).
		Where("building_id = ?", buildingID).
		Update("last_collected_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func buildingsFromModels(rows []model.Building) []terra.Building {
	out := make([]terra.Building, 0, len(rows))
	for _, m := range rows {
		out = append(out, terra.Building{
			ID:                m.BuildingID,
			OwnerAgentID:      m.OwnerAgentID,
			TypeCode:          terra.BuildingCode(m.TypeCode),
			Position:          geo.Coordinate{Lat: m.Lat, Lng: m.Lng},
			IsTerritoryCenter: m.IsTerritoryCenter,
			TerritoryRadiusKm: m.TerritoryRadiusKm,
			ParentBuildingID:  m.ParentBuildingID,
			LastCollectedAt:   m.LastCollectedAt,
		})
	}
	return out
}
