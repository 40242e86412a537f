package usecase

import (
	"log"
	"sync"

	"storeledger/internal/domain/entities"
)

// IConfigUseCase exposes the fee configuration used by new purchases.
//
// Semantics:
//   - Get returns the all-zero config until the first Save.
//   - Save replaces the configuration wholesale; partial updates do not exist.
//   - Past payments are unaffected: fees are snapshotted at purchase time.

type IConfigUseCase interface {
	Get() entities.FeeConfig
	Save(cfg entities.FeeConfig)
}

// ConfigUseCase is a lock-guarded holder injected into the payment use case,
// replacing the usual module-level singleton so tests can run isolated
// instances side by side.
type ConfigUseCase struct {
	mu  sync.RWMutex
	cfg entities.FeeConfig
}

var _ IConfigUseCase = (*ConfigUseCase)(nil)

func NewConfigUseCase() *ConfigUseCase {
	return &ConfigUseCase{}
}

func (u *ConfigUseCase) Get() entities.FeeConfig {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.cfg
}

func (u *ConfigUseCase) Save(cfg entities.FeeConfig) {
	u.mu.Lock()
	u.cfg = cfg
	u.mu.Unlock()
	log.Printf("[config][usecase] saved fixed_fee=%.2f fee_rate=%.2f block_rate=%.2f", cfg.FixedFee, cfg.FeeRate, cfg.BlockRate)
}
