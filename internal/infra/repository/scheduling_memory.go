package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// SchedulingMemoryRepository guarda tudo em memória com a mesma semântica
// do repositório gorm (escopo por recurso, ordenação, busca literal).
// Usado com STORAGE=memory e nos testes.
type SchedulingMemoryRepository struct {
	mu sync.RWMutex

	nextRequestID uint
	nextTypeID    uint

	requests map[uint]models.SchedulingRequest
	types    map[uint]models.ServiceType

	now func() time.Time
}

func NewSchedulingMemoryRepository() *SchedulingMemoryRepository {
	return &SchedulingMemoryRepository{
		requests: map[uint]models.SchedulingRequest{},
		types:    map[uint]models.ServiceType{},
		now:      time.Now,
	}
}

func foreignKeyViolation(id uint) error {
	return &pgconn.PgError{
		Code:    "23503",
		Message: fmt.Sprintf("service type %d does not exist", id),
	}
}

func (r *SchedulingMemoryRepository) listLocked(
	resource string,
	keep func(models.SchedulingRequest) bool,
) []dto.SchedulingRequestListDTO {

	rows := make([]dto.SchedulingRequestListDTO, 0)
	for _, req := range r.requests {
		if req.Resource != resource || !keep(req) {
			continue
		}
		st, ok := r.types[req.ServiceTypeID]
		if !ok {
			// inner join
			continue
		}
		rows = append(rows, dto.SchedulingRequestListDTO{
			ID:               req.ID,
			RequesterName:    req.RequesterName,
			RequesterTaxID:   req.RequesterTaxID,
			RequesterContact: req.RequesterContact,
			Date:             req.Date,
			StartTime:        req.StartTime,
			EndTime:          req.EndTime,
			Description:      req.Description,
			ServiceTypeID:    st.ID,
			ServiceTypeName:  st.Name,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RequesterName != rows[j].RequesterName {
			return rows[i].RequesterName < rows[j].RequesterName
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

func (r *SchedulingMemoryRepository) ListRequests(
	ctx context.Context,
	resource string,
) ([]dto.SchedulingRequestListDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(resource, func(models.SchedulingRequest) bool { return true }), nil
}

func (r *SchedulingMemoryRepository) SearchRequests(
	ctx context.Context,
	resource string,
	term string,
) ([]dto.SchedulingRequestListDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(resource, func(req models.SchedulingRequest) bool {
		return strings.Contains(req.RequesterName, term)
	}), nil
}

func (r *SchedulingMemoryRepository) GetRequest(
	ctx context.Context,
	resource string,
	id uint,
) (*models.SchedulingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok || req.Resource != resource {
		return nil, gorm.ErrRecordNotFound
	}
	if st, ok := r.types[req.ServiceTypeID]; ok {
		req.ServiceType = &st
	}
	return &req, nil
}

func (r *SchedulingMemoryRepository) CreateRequest(
	ctx context.Context,
	req *models.SchedulingRequest,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[req.ServiceTypeID]; !ok {
		return foreignKeyViolation(req.ServiceTypeID)
	}

	r.nextRequestID++
	now := r.now()

	req.ID = r.nextRequestID
	req.CreatedAt = now
	req.UpdatedAt = now

	stored := *req
	stored.ServiceType = nil
	r.requests[stored.ID] = stored
	return nil
}

func (r *SchedulingMemoryRepository) UpdateRequest(
	ctx context.Context,
	req *models.SchedulingRequest,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.requests[req.ID]
	if !ok || current.Resource != req.Resource {
		return gorm.ErrRecordNotFound
	}
	if _, ok := r.types[req.ServiceTypeID]; !ok {
		return foreignKeyViolation(req.ServiceTypeID)
	}

	req.CreatedAt = current.CreatedAt
	req.UpdatedAt = r.now()

	stored := *req
	stored.ServiceType = nil
	r.requests[stored.ID] = stored
	return nil
}

func (r *SchedulingMemoryRepository) DeleteRequest(
	ctx context.Context,
	resource string,
	id uint,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.Resource != resource {
		return gorm.ErrRecordNotFound
	}
	delete(r.requests, id)
	return nil
}

func (r *SchedulingMemoryRepository) ListServiceTypes(
	ctx context.Context,
) ([]models.ServiceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ServiceType, 0, len(r.types))
	for _, st := range r.types {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *SchedulingMemoryRepository) CreateServiceType(
	ctx context.Context,
	st *models.ServiceType,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.types {
		if existing.Name == st.Name {
			return &pgconn.PgError{Code: "23505", Message: "duplicate service type name"}
		}
	}

	r.nextTypeID++
	now := r.now()

	st.ID = r.nextTypeID
	st.CreatedAt = now
	st.UpdatedAt = now
	r.types[st.ID] = *st
	return nil
}

func (r *SchedulingMemoryRepository) ServiceTypeExists(
	ctx context.Context,
	id uint,
) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[id]
	return ok, nil
}

var _ domain.Repository = (*SchedulingMemoryRepository)(nil)
