package scheduling

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
)

type DeleteSchedulingRequest struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewDeleteSchedulingRequest(
	repo domain.Repository,
	audit AuditDispatcher,
) *DeleteSchedulingRequest {
	return &DeleteSchedulingRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteSchedulingRequest) Execute(
	ctx context.Context,
	def domain.Definition,
	id uint,
) error {

	if err := uc.repo.DeleteRequest(ctx, def.Name, id); err != nil {
		return mapPersistence(err)
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: audit.RequestIDFrom(ctx),
		Action:    def.Name + "_deleted",
		Entity:    entityName,
		EntityID:  &id,
	})

	return nil
}
