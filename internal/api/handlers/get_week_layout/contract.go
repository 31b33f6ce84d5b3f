package get_week_layout

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/get_timeline_layout"
)

type TimelineLayoutUseCase interface {
	Execute(ctx context.Context, req *get_timeline_layout.Request) (*get_timeline_layout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
