package scheduling

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

const CodeServiceTypeExists = "service_type_exists"

type ServiceTypes struct {
	repo domain.Repository
}

func NewServiceTypes(repo domain.Repository) *ServiceTypes {
	return &ServiceTypes{repo: repo}
}

func (uc *ServiceTypes) List(ctx context.Context) ([]models.ServiceType, error) {
	return uc.repo.ListServiceTypes(ctx)
}

func (uc *ServiceTypes) Create(ctx context.Context, name string) (*models.ServiceType, error) {
	st := &models.ServiceType{Name: strings.TrimSpace(name)}

	if err := uc.repo.CreateServiceType(ctx, st); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(CodeServiceTypeExists)
		}
		return nil, err
	}
	return st, nil
}
