package get_month_grid

import (
	"context"

	monthGrid "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_month_grid"
)

type MonthGridUseCase interface {
	Execute(ctx context.Context, req *monthGrid.Request) (*monthGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
