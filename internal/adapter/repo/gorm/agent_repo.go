package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"terraverse/internal/adapter/repo/gorm/model"
	"terraverse/internal/app/ports"
	"terraverse/internal/domain/geo"
	"terraverse/internal/domain/terra"
)

type AgentRepo struct {
	db *gorm.DB
}

func NewAgentRepo(db *gorm.DB) AgentRepo {
	return AgentRepo{db: db}
}

func (r AgentRepo) Create(ctx context.Context, a terra.Agent) error {
	return getDBFromCtx(ctx, r.db).Create(agentToModel(a)).Error
}

func (r AgentRepo) ListLeaders(ctx context.Context) ([]terra.Agent, error) {
	var rows []model.Agent
	err := getDBFromCtx(ctx, r.db).
		Where("role = ?", string(terra.RoleLeader)).
		Order("agent_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]terra.Agent, 0, len(rows))
	for _, m := range rows {
		out = append(out, agentFromModel(m))
	}
	return out, nil
}

func (r AgentRepo) GetByID(ctx context.Context, agentID string) (terra.Agent, error) {
	var m model.Agent
	if err := getDBFromCtx(ctx, r.db).Where("agent_id = ?", agentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return terra.Agent{}, ports.ErrNotFound
		}
		return terra.Agent{}, err
	}
	return agentFromModel(m), nil
}

func (r AgentRepo) SavePosition(ctx context.Context, agentID string, pos geo.Coordinate) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Agent{}).
		Where("agent_id = ?", agentID).
		Updates(map[string]any{"lat": pos.Lat, "lng": pos.Lng})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r AgentRepo) SaveOrder(ctx context.Context, agentID string, order *terra.MovementOrder) error {
	updates := map[string]any{
		"order_origin_lat": nil,
		"order_origin_lng": nil,
		"order_dest_lat":   nil,
		"order_dest_lng":   nil,
		"order_departed":   nil,
		"order_arrives":    nil,
	}
	if order != nil {
		updates["order_origin_lat"] = order.Origin.Lat
		updates["order_origin_lng"] = order.Origin.Lng
		updates["order_dest_lat"] = order.Destination.Lat
		updates["order_dest_lng"] = order.Destination.Lng
		updates["order_departed"] = order.DepartedAt
		updates["order_arrives"] = order.ArrivesAt
	}
	res := getDBFromCtx(ctx, r.db).Model(&model.Agent{}).
		Where("agent_id = ?", agentID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func agentToModel(a terra.Agent) *model.Agent {
	m := &model.Agent{
		AgentID:     a.ID,
		FactionID:   a.FactionID,
		Role:        string(a.Role),
		CharacterID: a.CharacterID,
		Lat:         a.Position.Lat,
		Lng:         a.Position.Lng,
	}
	if a.Order != nil {
		m.OrderOriginLat = &a.Order.Origin.Lat
		m.OrderOriginLng = &a.Order.Origin.Lng
		m.OrderDestLat = &a.Order.Destination.Lat
		m.OrderDestLng = &a.Order.Destination.Lng
		m.OrderDeparted = &a.Order.DepartedAt
		m.OrderArrives = &a.Order.ArrivesAt
	}
	return m
}

func agentFromModel(m model.Agent) terra.Agent {
	a := terra.Agent{
		ID:          m.AgentID,
		FactionID:   m.FactionID,
		Role:        terra.AgentRole(m.Role),
		CharacterID: m.CharacterID,
		Position:    geo.Coordinate{Lat: m.Lat, Lng: m.Lng},
		UpdatedAt:   m.UpdatedAt,
	}
	// The order columns live or die together; a partially null row is
	// treated as no order.
	if m.OrderOriginLat != nil && m.OrderOriginLng != nil &&
		m.OrderDestLat != nil && m.OrderDestLng != nil &&
		m.OrderDeparted != nil && m.OrderArrives != nil {
		a.Order = &terra.MovementOrder{
			Origin:      geo.Coordinate{Lat: *m.OrderOriginLat, Lng: *m.OrderOriginLng},
			Destination: geo.Coordinate{Lat: *m.OrderDestLat, Lng: *m.OrderDestLng},
			DepartedAt:  *m.OrderDeparted,
			ArrivesAt:   *m.OrderArrives,
		}
	}
	return a
}
