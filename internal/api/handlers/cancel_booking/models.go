package cancel_booking

// CancelBookingRequest modelo de requisição HTTP
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
