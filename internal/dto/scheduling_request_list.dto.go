package dto

import "time"

// SchedulingRequestListDTO é a linha da listagem: solicitação + nome do
// tipo de serviço (join).
type SchedulingRequestListDTO struct {
	ID               uint      `json:"id"`
	RequesterName    string    `json:"nomeSolicitante"`
	RequesterTaxID   string    `json:"cpfSolicitante"`
	RequesterContact string    `json:"contatoSolicitante"`
	Date             time.Time `json:"dataAgendamento"`
	StartTime        string    `json:"horario"`
	EndTime          string    `json:"horarioFim,omitempty"`
	Description      string    `json:"descricaoServico"`
	ServiceTypeID    uint      `json:"tipoServicoId"`
	ServiceTypeName  string    `json:"tipoServico"`
}
