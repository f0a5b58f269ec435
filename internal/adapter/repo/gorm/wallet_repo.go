package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"terraverse/internal/adapter/repo/gorm/model"
	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

type WalletRepo struct {
	db *gorm.DB
}

func NewWalletRepo(db *gorm.DB) WalletRepo {
	return WalletRepo{db: db}
}

func (r WalletRepo) Create(ctx context.Context, w terra.Wallet) error {
	m := model.Wallet{OwnerAgentID: w.OwnerAgentID, Balance: w.Balance}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func (r WalletRepo) GetByOwner(ctx context.Context, ownerAgentID string) (terra.Wallet, error) {
	var m model.Wallet
	if err := getDBFromCtx(ctx, r.db).Where("owner_agent_id = ?", ownerAgentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return terra.Wallet{}, ports.ErrNotFound
		}
		return terra.Wallet{}, err
	}
	return terra.Wallet{OwnerAgentID: m.OwnerAgentID, Balance: m.Balance}, nil
}

func (r WalletRepo) Credit(ctx context.Context, ownerAgentID string, amount int64) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Wallet{}).
		Where("owner_agent_id = ?", ownerAgentID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Debit is conditional on sufficient balance so the row can never go
// negative, whatever else happens in the surrounding transaction.
func (r WalletRepo) Debit(ctx context.Context, ownerAgentID string, amount int64) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Wallet{}).
		Where("owner_agent_id = ? AND balance >= ?", ownerAgentID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrInsufficientFunds
	}
	return nil
}
