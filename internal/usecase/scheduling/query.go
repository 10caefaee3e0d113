package scheduling

import (
	"context"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// ======================================================
// GET
// ======================================================

type GetSchedulingRequest struct {
	repo domain.Repository
}

func NewGetSchedulingRequest(repo domain.Repository) *GetSchedulingRequest {
	return &GetSchedulingRequest{repo: repo}
}

func (uc *GetSchedulingRequest) Execute(
	ctx context.Context,
	def domain.Definition,
	id uint,
) (*models.SchedulingRequest, error) {

	req, err := uc.repo.GetRequest(ctx, def.Name, id)
	if err != nil {
		return nil, mapPersistence(err)
	}
	return req, nil
}

// ======================================================
// LIST / SEARCH
// ======================================================

type ListSchedulingRequests struct {
	repo domain.Repository
}

func NewListSchedulingRequests(repo domain.Repository) *ListSchedulingRequests {
	return &ListSchedulingRequests{repo: repo}
}

func (uc *ListSchedulingRequests) Execute(
	ctx context.Context,
	def domain.Definition,
) ([]dto.SchedulingRequestListDTO, error) {
	return uc.repo.ListRequests(ctx, def.Name)
}

// Search filtra por substring do nome do solicitante. Termo vazio lista
// tudo.
func (uc *ListSchedulingRequests) Search(
	ctx context.Context,
	def domain.Definition,
	term string,
) ([]dto.SchedulingRequestListDTO, error) {
	if term == "" {
		return uc.repo.ListRequests(ctx, def.Name)
	}
	return uc.repo.SearchRequests(ctx, def.Name, term)
}
