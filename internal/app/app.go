package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"slot_machine/internal/config"

	"go.uber.org/zap"
)

const envFile = ".env"

type App struct {
	ServiceProvider *ServiceProvider

	in  io.Reader
	out io.Writer
}

// NewApp - игра читает ответы игрока из in и пишет в out
func NewApp(in io.Reader, out io.Writer) *App {
	return &App{in: in, out: out}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider(a.in, a.out)
}

// Run - одна игровая сессия. Ошибки сборки зависимостей возвращаются как error.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("slot machine: %v", r)
		}
	}()

	envErr := config.Load(envFile)
	a.initServiceProvider()

	log := a.ServiceProvider.Logger()
	defer func() {
		_ = log.Sync()
	}()

	switch {
	case envErr == nil:
	case errors.Is(envErr, fs.ErrNotExist):
		log.Debug("no .env file, using process environment")
	default:
		log.Warn("error loading .env file", zap.Error(envErr))
	}

	log.Info("session started", zap.String("machine_config", a.ServiceProvider.GameCfg().MachinePath()))
	if err := a.ServiceProvider.ConsoleHandler().Run(ctx); err != nil {
		log.Error("session failed", zap.Error(err))
		return err
	}
	return nil
}
