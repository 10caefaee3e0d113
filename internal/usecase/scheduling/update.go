package scheduling

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

type UpdateSchedulingRequest struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewUpdateSchedulingRequest(
	repo domain.Repository,
	audit AuditDispatcher,
) *UpdateSchedulingRequest {
	return &UpdateSchedulingRequest{
		repo:  repo,
		audit: audit,
	}
}

// Execute sobrescreve o registro inteiro (last write wins). Falhas do banco
// chegam ao chamador.
func (uc *UpdateSchedulingRequest) Execute(
	ctx context.Context,
	def domain.Definition,
	id uint,
	in validators.SchedulingInput,
) (*models.SchedulingRequest, error) {

	in, err := prepare(def, in)
	if err != nil {
		return nil, err
	}

	req, err := uc.repo.GetRequest(ctx, def.Name, id)
	if err != nil {
		return nil, mapPersistence(err)
	}

	if err := assertServiceType(ctx, uc.repo, in.ServiceTypeID); err != nil {
		return nil, err
	}

	if err := apply(req, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRequest(ctx, req); err != nil {
		return nil, mapPersistence(err)
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: audit.RequestIDFrom(ctx),
		Action:    def.Name + "_updated",
		Entity:    entityName,
		EntityID:  &req.ID,
	})

	return req, nil
}
