package scheduling

import (
	"context"
	"log"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

type CreateSchedulingRequest struct {
	repo  domain.Repository
	guard SubmissionGuard
	audit AuditDispatcher
}

func NewCreateSchedulingRequest(
	repo domain.Repository,
	guard SubmissionGuard,
	audit AuditDispatcher,
) *CreateSchedulingRequest {
	return &CreateSchedulingRequest{
		repo:  repo,
		guard: guard,
		audit: audit,
	}
}

// Execute valida, confere o tipo de serviço, bloqueia submissões repetidas
// e insere. Não há checagem de sobreposição de horários.
func (uc *CreateSchedulingRequest) Execute(
	ctx context.Context,
	def domain.Definition,
	in validators.SchedulingInput,
) (*models.SchedulingRequest, error) {

	in, err := prepare(def, in)
	if err != nil {
		return nil, err
	}

	if err := assertServiceType(ctx, uc.repo, in.ServiceTypeID); err != nil {
		return nil, err
	}

	key := Fingerprint(def.Name, in)
	acquired, err := uc.guard.Acquire(ctx, key)
	if err != nil {
		// guard fora do ar não impede o cadastro
		log.Printf("submission guard unavailable: %v", err)
	} else if !acquired {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateSubmission)
	}

	req := &models.SchedulingRequest{Resource: def.Name}
	if err := apply(req, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		if acquired {
			_ = uc.guard.Release(ctx, key)
		}
		return nil, mapPersistence(err)
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: audit.RequestIDFrom(ctx),
		Action:    def.Name + "_created",
		Entity:    entityName,
		EntityID:  &req.ID,
	})

	return req, nil
}
