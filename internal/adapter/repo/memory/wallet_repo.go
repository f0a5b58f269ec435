package memory

import (
	"context"

	"terraverse/internal/app/ports"
	"terraverse/internal/domain/terra"
)

type WalletRepo struct {
	store *Store
}

func NewWalletRepo(store *Store) WalletRepo {
	return WalletRepo{store: store}
}

func (r WalletRepo) Create(_ context.Context, w terra.Wallet) error {
	if _, exists := r.store.wallets[w.OwnerAgentID]; exists {
		return ports.ErrConflict
	}
	r.store.wallets[w.OwnerAgentID] = w
	return nil
}

func (r WalletRepo) GetByOwner(_ context.Context, ownerAgentID string) (terra.Wallet, error) {
	w, ok := r.store.wallets[ownerAgentID]
	if !ok {
		return terra.Wallet{}, ports.ErrNotFound
	}
	return w, nil
}

func (r WalletRepo) Credit(_ context.Context, ownerAgentID string, amount int64) error {
	w, ok := r.store.wallets[ownerAgentID]
	if !ok {
		return ports.ErrNotFound
	}
	w.Balance += amount
	r.store.wallets[ownerAgentID] = w
	return nil
}

func (r WalletRepo) Debit(_ context.Context, ownerAgentID string, amount int64) error {
	w, ok := r.store.wallets[ownerAgentID]
	if !ok {
		return ports.ErrNotFound
	}
	if w.Balance < amount {
		return ports.ErrInsufficientFunds
	}
	w.Balance -= amount
	r.store.wallets[ownerAgentID] = w
	return nil
}
