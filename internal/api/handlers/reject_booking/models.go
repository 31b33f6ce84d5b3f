package reject_booking

// RejectBookingRequest модель тела запроса на отклонение записи
type RejectBookingRequest struct {
	RejectionReason string `json:"rejectionReason"`
}
