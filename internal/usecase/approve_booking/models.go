package approve_booking

// Request модель запроса на подтверждение записи
type Request struct {
	BookingID string
	UserID    int64 // ID сотрудника (для логирования)
}

// Response модель ответа с подтверждённой записью
//
// Подтверждённая запись хранит выровненную по сетке длительность:
// сырая запрошенная длительность округляется до ближайшего кратного слоту
// (минимум один слот), от неё выводится endTime
type Response struct {
	ID                      string  `json:"id"`
	Date                    string  `json:"date"`
	StartTime               string  `json:"startTime"`
	EndTime                 string  `json:"endTime"`
	ApprovedDurationMinutes int     `json:"approvedDurationMinutes"`
	SlotsUsed               int     `json:"slotsUsed"`
	Status                  string  `json:"status"`
	ServiceName             string  `json:"serviceName"`
	ClientName              *string `json:"clientName,omitempty"`
}
