package round

import (
	"slot_machine/internal/repository"
	"slot_machine/internal/service"

	"go.uber.org/zap"
)

type serv struct {
	lineServ   service.LineService
	walletRepo repository.WalletRepository
	statsRepo  repository.StatsRepository
	logger     *zap.Logger
}

// NewRoundService - раунд игры: списание ставки, спин, начисление выигрыша
func NewRoundService(
	lineServ service.LineService,
	walletRepo repository.WalletRepository,
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
) service.RoundService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		lineServ:   lineServ,
		walletRepo: walletRepo,
		statsRepo:  statsRepo,
		logger:     logger,
	}
}
