package usecase

import (
	"time"

	"quickcal/internal/calendar"
	"quickcal/internal/parser"
	pkgLog "quickcal/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	engine   *parser.Engine
	calendar calendar.Service
	now      func() time.Time
}

// New creates a new quick-add UseCase instance. The calendar service may be
// nil when every call will be a dry run.
func New(l pkgLog.Logger, engine *parser.Engine, cal calendar.Service) *implUseCase {
	return &implUseCase{
		l:        l,
		engine:   engine,
		calendar: cal,
		now:      time.Now,
	}
}
