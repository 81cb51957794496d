package catalogservice

// Shop perfil da barbearia no CatalogService
type Shop struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ManagerIDs []int64 `json:"manager_ids"` // Usuários com acesso de staff
}

// Barber modelo de barbeiro do CatalogService
type Barber struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Service modelo de serviço (corte, barba, ...) do CatalogService
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	Active          bool     `json:"active"`
}

// ErrorResponse modelo de erro do CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
