package page

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

const (
	MsgFixErrors    = "Por favor, corrija os erros e tente novamente."
	MsgCreated      = "Agendamento realizado com sucesso!"
	MsgUpdated      = "Agendamento atualizado com sucesso!"
	MsgDeleted      = "Agendamento excluído com sucesso!"
	MsgConfirm      = "Tem certeza que deseja excluir?"
	MsgListFailed   = "Erro ao listar agendamentos."
	MsgTypesFailed  = "Erro ao carregar tipos de serviços."
	MsgLoadFailed   = "Erro ao carregar agendamento."
	msgSavePrefix   = "Erro ao salvar o agendamento: "
	msgFilterFailed = "Erro ao filtrar agendamentos."
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Backend é o que a página precisa da API; *client.Client satisfaz.
type Backend interface {
	List(ctx context.Context) ([]dto.SchedulingRequestListDTO, error)
	Get(ctx context.Context, id uint) (*models.SchedulingRequest, error)
	Create(ctx context.Context, in validators.SchedulingInput) (*models.SchedulingRequest, error)
	Update(ctx context.Context, id uint, in validators.SchedulingInput) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, term string) ([]dto.SchedulingRequestListDTO, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
}

// Form guarda os valores digitados; o tipo de serviço selecionado é
// mantido com id e nome.
type Form struct {
	validators.SchedulingInput
	ServiceTypeName string
}

type Page struct {
	Def     scheduling.Definition
	backend Backend

	Mode Mode
	ID   uint

	Form         Form
	Errors       validators.FieldErrors
	Records      []dto.SchedulingRequestListDTO
	ServiceTypes []models.ServiceType
	Term         string

	Success string
	Failure string

	// Rota para onde navegar após salvar; vazia enquanto não houver navegação.
	Redirect string

	saving sync.Mutex
}

func New(def scheduling.Definition, backend Backend) *Page {
	return &Page{
		Def:     def,
		backend: backend,
		Mode:    ModeCreate,
	}
}

// Mount carrega a listagem e as opções de tipo de serviço. Com routeID,
// a página entra em modo edição e o formulário recebe o registro.
func (p *Page) Mount(ctx context.Context, routeID string) {
	p.loadRecords(ctx)
	p.loadServiceTypes(ctx)

	routeID = strings.TrimSpace(routeID)
	if routeID == "" {
		return
	}

	p.Mode = ModeEdit
	id, err := strconv.ParseUint(routeID, 10, 64)
	if err != nil || id == 0 {
		p.Failure = MsgLoadFailed
		return
	}
	p.ID = uint(id)

	rec, err := p.backend.Get(ctx, p.ID)
	if err != nil {
		log.Printf("[page:%s] load id=%d: %v", p.Def.Name, p.ID, err)
		p.Failure = MsgLoadFailed
		return
	}
	p.populate(rec)
}

func (p *Page) populate(rec *models.SchedulingRequest) {
	in := validators.SchedulingInput{
		RequesterName:    rec.RequesterName,
		RequesterTaxID:   rec.RequesterTaxID,
		RequesterContact: rec.RequesterContact,
		Address:          rec.Address,
		Neighborhood:     rec.Neighborhood,
		StreetNumber:     rec.StreetNumber,
		ServiceTypeID:    rec.ServiceTypeID,
		Date:             timezone.FormatDate(rec.Date),
		StartTime:        rec.StartTime,
		EndTime:          rec.EndTime,
		Description:      rec.Description,
	}
	p.Form = Form{SchedulingInput: in}
	if rec.ServiceType != nil {
		p.Form.ServiceTypeName = rec.ServiceType.Name
	} else {
		p.Form.ServiceTypeName = p.serviceTypeName(rec.ServiceTypeID)
	}
}

// Change atualiza um campo do formulário pelo nome do campo (o mesmo do JSON).
// Nomes desconhecidos são ignorados.
func (p *Page) Change(name, value string) {
	f := &p.Form.SchedulingInput
	switch name {
	case "nomeSolicitante":
		f.RequesterName = value
	case "cpfSolicitante":
		f.RequesterTaxID = value
	case "contatoSolicitante":
		f.RequesterContact = value
	case "enderecoSolicitante":
		f.Address = value
	case "bairroSolicitante":
		f.Neighborhood = value
	case "numeroSolicitante":
		f.StreetNumber = value
	case "dataAgendamento":
		// aceita também data ISO com hora; o campo guarda só YYYY-MM-DD
		if d, err := timezone.ReformatISODate(value); err == nil {
			value = d
		}
		f.Date = value
	case "horario":
		f.StartTime = value
	case "horarioFim":
		f.EndTime = value
	case "descricaoServico":
		f.Description = value
	case "tipoServico":
		id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			id = 0
		}
		p.SelectServiceType(uint(id))
	}
}

func (p *Page) SelectServiceType(id uint) {
	p.Form.ServiceTypeID = id
	p.Form.ServiceTypeName = p.serviceTypeName(id)
}

func (p *Page) serviceTypeName(id uint) string {
	for _, st := range p.ServiceTypes {
		if st.ID == id {
			return st.Name
		}
	}
	return ""
}

// Submission devolve o corpo que Save envia para o backend.
func (p *Page) Submission() validators.SchedulingInput {
	in := p.Form.SchedulingInput
	in.Ranged = p.Def.Ranged()
	if !in.Ranged {
		in.EndTime = ""
	}
	return in
}

// Save valida o formulário inteiro e, se válido, cria ou atualiza o
// registro. Retorna false quando nada foi salvo. Uma chamada enquanto
// outra está em andamento é ignorada.
func (p *Page) Save(ctx context.Context) bool {
	if !p.saving.TryLock() {
		return false
	}
	defer p.saving.Unlock()

	in := p.Submission()
	if errs := validators.ValidateScheduling(in); errs != nil {
		p.Errors = errs
		p.Failure = MsgFixErrors
		return false
	}
	p.Errors = nil

	var err error
	if p.Mode == ModeEdit {
		err = p.backend.Update(ctx, p.ID, in)
	} else {
		_, err = p.backend.Create(ctx, in)
	}
	if err != nil {
		p.Failure = msgSavePrefix + err.Error()
		return false
	}

	if p.Mode == ModeEdit {
		p.Success = MsgUpdated
	} else {
		p.Success = MsgCreated
	}
	p.Failure = ""
	p.reset()
	p.loadRecords(ctx)
	p.Redirect = p.Def.ListRoute
	return true
}

func (p *Page) reset() {
	p.Form = Form{}
	p.Errors = nil
	p.Mode = ModeCreate
	p.ID = 0
}

// Remove exclui o registro somente se confirm aprovar a pergunta.
func (p *Page) Remove(ctx context.Context, id uint, confirm func(prompt string) bool) bool {
	if confirm == nil || !confirm(MsgConfirm) {
		return false
	}
	if err := p.backend.Delete(ctx, id); err != nil {
		p.Failure = err.Error()
		return false
	}
	p.Success = MsgDeleted
	p.loadRecords(ctx)
	return true
}

// Filter troca a listagem pelo resultado da busca por nome; termo vazio
// volta à listagem completa.
func (p *Page) Filter(ctx context.Context, term string) {
	p.Term = strings.TrimSpace(term)
	if p.Term == "" {
		p.loadRecords(ctx)
		return
	}

	rows, err := p.backend.Search(ctx, p.Term)
	if err != nil {
		log.Printf("[page:%s] search %q: %v", p.Def.Name, p.Term, err)
		p.Failure = msgFilterFailed
		return
	}
	p.Records = rows
}

func (p *Page) loadRecords(ctx context.Context) {
	rows, err := p.backend.List(ctx)
	if err != nil {
		log.Printf("[page:%s] list: %v", p.Def.Name, err)
		p.Failure = MsgListFailed
		return
	}
	p.Records = rows
}

func (p *Page) loadServiceTypes(ctx context.Context) {
	types, err := p.backend.ListServiceTypes(ctx)
	if err != nil {
		log.Printf("[page:%s] service types: %v", p.Def.Name, err)
		p.Failure = MsgTypesFailed
		return
	}
	p.ServiceTypes = types
}
