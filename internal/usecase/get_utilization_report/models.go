package get_utilization_report

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса отчёта утилизации сетки
type Request struct {
	From time.Time // Начало периода (включительно)
	To   time.Time // Конец периода (включительно)
}

// Response модель ответа с отчётом
type Response struct {
	From   time.Time
	To     time.Time
	Report domain.UtilizationReport
}
