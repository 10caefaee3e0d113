package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

const DefaultBaseURL = "http://localhost:3001"

// Client fala com a API REST de uma definição (prefixo), uma requisição
// por chamada, sem retry.
type Client struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
}

func New(baseURL, prefix string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, prefix, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL, prefix string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		prefix:     prefix,
		httpClient: httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, failMsg string) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: failMsg}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RequestError{Message: failMsg}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Message: failMsg}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestError{Message: failMsg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Message: failMsg}
	}
	return nil
}

func (c *Client) itemPath(id uint) string {
	return fmt.Sprintf("%s/%d", c.prefix, id)
}

// ======================================================
// OPERAÇÕES
// ======================================================

func (c *Client) List(ctx context.Context) ([]dto.SchedulingRequestListDTO, error) {
	var rows []dto.SchedulingRequestListDTO
	if err := c.do(ctx, http.MethodGet, c.prefix, nil, &rows, "Erro ao obter todos os agendamentos"); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Get(ctx context.Context, id uint) (*models.SchedulingRequest, error) {
	var req models.SchedulingRequest
	if err := c.do(ctx, http.MethodGet, c.itemPath(id), nil, &req, "Erro ao obter o agendamento por ID"); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *Client) Create(ctx context.Context, in validators.SchedulingInput) (*models.SchedulingRequest, error) {
	var created models.SchedulingRequest
	if err := c.do(ctx, http.MethodPost, c.prefix, in, &created, "Erro ao adicionar o agendamento"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Update(ctx context.Context, id uint, in validators.SchedulingInput) error {
	return c.do(ctx, http.MethodPut, c.itemPath(id), in, nil, "Erro ao atualizar o agendamento")
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, c.itemPath(id), nil, nil, "Erro ao excluir o agendamento")
}

func (c *Client) Search(ctx context.Context, term string) ([]dto.SchedulingRequestListDTO, error) {
	var rows []dto.SchedulingRequestListDTO
	path := c.prefix + "/filtrar/" + url.PathEscape(term)
	if err := c.do(ctx, http.MethodGet, path, nil, &rows, "Erro ao filtrar os agendamentos"); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	var types []models.ServiceType
	if err := c.do(ctx, http.MethodGet, "/servico", nil, &types, "Erro ao carregar tipos de serviços"); err != nil {
		return nil, err
	}
	return types, nil
}
