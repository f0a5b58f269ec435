package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"terraverse/internal/adapter/repo/gorm/model"
	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

type FactionRepo struct {
	db *gorm.DB
}

func NewFactionRepo(db *gorm.DB) FactionRepo {
	return FactionRepo{db: db}
}

func (r FactionRepo) Create(ctx context.Context, f terra.Faction) error {
	m := model.Faction{
		FactionID:     f.ID,
		Name:          f.Name,
		Category:      string(f.Category),
		LeaderAgentID: f.LeaderAgentID,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func (r FactionRepo) GetByID(ctx context.Context, factionID string) (terra.Faction, error) {
	var m model.Faction
	if err := getDBFromCtx(ctx, r.db).Where("faction_id = ?", factionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return terra.Faction{}, ports.ErrNotFound
		}
		return terra.Faction{}, err
	}
	return terra.Faction{
		ID:            m.FactionID,
		Name:          m.Name,
		Category:      terra.FactionCategory(m.Category),
		LeaderAgentID: m.LeaderAgentID,
	}, nil
}
