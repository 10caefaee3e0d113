package models

import "time"

type SchedulingRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Nome da Definition dona do registro.
	Resource string `gorm:"size:50;not null;index" json:"-"`

	RequesterName    string `gorm:"size:100;not null;index" json:"nomeSolicitante"`
	RequesterTaxID   string `gorm:"size:11;not null" json:"cpfSolicitante"`
	RequesterContact string `gorm:"size:15;not null" json:"contatoSolicitante"`
	Address          string `gorm:"size:255;not null" json:"enderecoSolicitante"`
	Neighborhood     string `gorm:"size:100;not null" json:"bairroSolicitante"`
	StreetNumber     string `gorm:"size:20" json:"numeroSolicitante"`

	ServiceTypeID uint         `gorm:"not null" json:"tipoServicoId"`
	ServiceType   *ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"tipoServico,omitempty"`

	Date        time.Time `gorm:"type:date;not null" json:"dataAgendamento"`
	StartTime   string    `gorm:"size:5;not null" json:"horario"`
	EndTime     string    `gorm:"size:5" json:"horarioFim,omitempty"`
	Description string    `gorm:"type:text;not null" json:"descricaoServico"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
