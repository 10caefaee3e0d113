package scheduling

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// Repository persiste solicitações de agendamento. Toda operação é
// restrita ao recurso (Definition.Name) informado.
//
// Get, Update e Delete retornam gorm.ErrRecordNotFound quando o id não
// existe no recurso.
type Repository interface {
	// -------- Scheduling requests --------
	ListRequests(
		ctx context.Context,
		resource string,
	) ([]dto.SchedulingRequestListDTO, error)

	GetRequest(
		ctx context.Context,
		resource string,
		id uint,
	) (*models.SchedulingRequest, error)

	CreateRequest(
		ctx context.Context,
		req *models.SchedulingRequest,
	) error

	UpdateRequest(
		ctx context.Context,
		req *models.SchedulingRequest,
	) error

	DeleteRequest(
		ctx context.Context,
		resource string,
		id uint,
	) error

	SearchRequests(
		ctx context.Context,
		resource string,
		term string,
	) ([]dto.SchedulingRequestListDTO, error)

	// -------- Service types --------
	ListServiceTypes(
		ctx context.Context,
	) ([]models.ServiceType, error)

	CreateServiceType(
		ctx context.Context,
		st *models.ServiceType,
	) error

	ServiceTypeExists(
		ctx context.Context,
		id uint,
	) (bool, error)
}
