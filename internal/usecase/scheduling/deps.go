package scheduling

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

const entityName = "scheduling_request"

type AuditDispatcher interface {
	Dispatch(ev audit.Event) bool
}

type SubmissionGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// prepare ajusta o input ao modo de horário da definição e valida.
func prepare(def domain.Definition, in validators.SchedulingInput) (validators.SchedulingInput, error) {
	in.Ranged = def.Ranged()
	if !in.Ranged {
		in.EndTime = ""
	}
	if fe := validators.ValidateScheduling(in); fe != nil {
		return in, fe
	}
	return in, nil
}

func assertServiceType(ctx context.Context, repo domain.Repository, id uint) error {
	ok, err := repo.ServiceTypeExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness(httperr.CodeServiceTypeNotFound)
	}
	return nil
}

// apply copia os campos do input (já validado) para o modelo.
func apply(dst *models.SchedulingRequest, in validators.SchedulingInput) error {
	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return err
	}

	dst.RequesterName = in.RequesterName
	dst.RequesterTaxID = in.RequesterTaxID
	dst.RequesterContact = in.RequesterContact
	dst.Address = in.Address
	dst.Neighborhood = in.Neighborhood
	dst.StreetNumber = in.StreetNumber
	dst.ServiceTypeID = in.ServiceTypeID
	dst.ServiceType = nil
	dst.Date = date
	dst.StartTime = in.StartTime
	dst.EndTime = in.EndTime
	dst.Description = in.Description
	return nil
}

// mapPersistence traduz erros do repositório para erros de negócio.
func mapPersistence(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httperr.ErrBusiness(httperr.CodeNotFound)
	case httperr.IsForeignKeyViolation(err):
		return httperr.ErrBusiness(httperr.CodeServiceTypeNotFound)
	default:
		return err
	}
}

// Fingerprint identifica uma submissão: mesma definição e mesmo corpo.
func Fingerprint(resource string, in validators.SchedulingInput) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(append([]byte(resource+"\x00"), b...))
	return hex.EncodeToString(sum[:])
}
