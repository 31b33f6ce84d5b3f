package get_utilization_report

import (
	"context"

	utilizationReport "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_utilization_report"
)

type UtilizationReportUseCase interface {
	Execute(ctx context.Context, req *utilizationReport.Request) (*utilizationReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
