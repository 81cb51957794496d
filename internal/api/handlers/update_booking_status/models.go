package update_booking_status

// UpdateStatusRequest modelo de requisição HTTP
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
