// Package state defines shared program state.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"csheet/common"
	"csheet/config"
	"csheet/store"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by render subcommand
	NoDirs       bool
	Overwrite    bool
	Format       common.OutputFmt
	DefaultStyle []byte

	start         time.Time
	restoreStdLog func()

	storeOnce sync.Once
	store     *store.Store
	storeErr  error
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Store opens snapshot store on first use.
func (e *LocalEnv) Store() (*store.Store, error) {
	e.storeOnce.Do(func() {
		if e.Cfg == nil {
			e.storeErr = errors.New("configuration is not loaded")
			return
		}
		log := e.Log
		if log == nil {
			log = zap.NewNop()
		}
		e.store, e.storeErr = store.Open(e.Cfg.Store.Path, log.Named("store"))
	})
	return e.store, e.storeErr
}

// CloseStore closes snapshot store if it was ever opened.
func (e *LocalEnv) CloseStore() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
