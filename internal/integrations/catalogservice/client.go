package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger interface para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client cliente HTTP para o CatalogService (barbeiros, serviços e perfil
// da barbearia). O booking service não persiste esses dados - eles pertencem
// ao catálogo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient cria um novo cliente do CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetShop busca o perfil da barbearia (inclui os IDs de staff)
func (c *Client) GetShop(ctx context.Context) (*Shop, error) {
	var shop Shop
	if err := c.get(ctx, fmt.Sprintf("%s/internal/shop", c.baseURL), ErrShopNotFound, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// GetBarber busca um barbeiro pelo ID
func (c *Client) GetBarber(ctx context.Context, barberID int64) (*Barber, error) {
	var barber Barber
	url := fmt.Sprintf("%s/internal/barbers/%d", c.baseURL, barberID)
	if err := c.get(ctx, url, ErrBarberNotFound, &barber); err != nil {
		return nil, err
	}
	return &barber, nil
}

// GetService busca um serviço pelo ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	var service Service
	url := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)
	if err := c.get(ctx, url, ErrServiceNotFound, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// get executa um GET e decodifica a resposta em out.
// notFound é o sentinel retornado para 404.
func (c *Client) get(ctx context.Context, url string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Segue para a decodificação
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
