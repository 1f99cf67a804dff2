package line

import (
	"slot_machine/internal/config"
	"slot_machine/internal/service"
)

type serv struct {
	generator *ReelGenerator
	evaluator *PayoutEvaluator
}

// NewLineService Создать новый слот 3x3
func NewLineService(cfg config.MachineConfig, src Source) service.LineService {
	return &serv{
		generator: NewReelGenerator(cfg.SymbolCounts(), src),
		evaluator: NewPayoutEvaluator(cfg.SymbolValues()),
	}
}
