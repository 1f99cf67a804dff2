package app

import (
	"io"
	"math/rand/v2"

	consoleAPI "slot_machine/internal/api/console"
	"slot_machine/internal/config"
	"slot_machine/internal/config/env"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/stats_repo"
	"slot_machine/internal/repository/wallet_repo"
	"slot_machine/internal/service"
	"slot_machine/internal/service/line"
	"slot_machine/internal/service/round"
	"slot_machine/pkg/logger"

	"go.uber.org/zap"
)

type ServiceProvider struct {
	in  io.Reader
	out io.Writer

	// Configs
	gameCfg    config.GameConfig
	logCfg     config.LogConfig
	machineCfg config.MachineConfig

	logger *zap.Logger
	src    line.Source

	// Line bits
	lineServ service.LineService

	// Round bits
	walletRepo repository.WalletRepository
	statsRepo  repository.StatsRepository
	roundServ  service.RoundService

	consoleHand *consoleAPI.Handler
}

func newServiceProvider(in io.Reader, out io.Writer) *ServiceProvider {
	return &ServiceProvider{in: in, out: out}
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) MachineCfg() config.MachineConfig {
	if sp.machineCfg == nil {
		cfg, err := env.NewMachineConfigFromYAML(sp.GameCfg().MachinePath())
		if err != nil {
			panic("failed to get machine config: " + err.Error())
		}
		sp.machineCfg = cfg
	}
	return sp.machineCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		cfg := sp.LogCfg()
		l, err := logger.New(logger.Config{
			Level:   cfg.Level(),
			Dir:     cfg.Dir(),
			App:     cfg.File(),
			Console: cfg.Console(),
		})
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

// RandSource - генератор для барабанов. Seed пишем в лог, чтобы сессию можно было повторить.
func (sp *ServiceProvider) RandSource() line.Source {
	if sp.src == nil {
		seed := sp.GameCfg().Seed()
		if seed == 0 {
			seed = rand.Uint64()
		}
		sp.Logger().Info("reels seeded", zap.Uint64("seed", seed))
		sp.src = rand.New(rand.NewPCG(seed, seed))
	}
	return sp.src
}

func (sp *ServiceProvider) LineService() service.LineService {
	if sp.lineServ == nil {
		sp.lineServ = line.NewLineService(sp.MachineCfg(), sp.RandSource())
	}
	return sp.lineServ
}

func (sp *ServiceProvider) WalletRepository() repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository()
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) RoundService() service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(sp.LineService(), sp.WalletRepository(), sp.StatsRepository(), sp.Logger())
	}
	return sp.roundServ
}

func (sp *ServiceProvider) ConsoleHandler() *consoleAPI.Handler {
	if sp.consoleHand == nil {
		sp.consoleHand = consoleAPI.NewHandler(consoleAPI.HandlerDeps{
			Serv:   sp.RoundService(),
			In:     sp.in,
			Out:    sp.out,
			Logger: sp.Logger(),
		})
	}
	return sp.consoleHand
}
