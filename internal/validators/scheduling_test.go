package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() SchedulingInput {
	return SchedulingInput{
		RequesterName:    "Maria Silva",
		RequesterTaxID:   "12345678901",
		RequesterContact: "(11) 91234-5678",
		Address:          "Rua das Flores",
		Neighborhood:     "Centro",
		ServiceTypeID:    1,
		Date:             "2026-11-20",
		StartTime:        "09:30",
		Description:      "Troca de chuveiro",
	}
}

func TestValidateScheduling_Valid(t *testing.T) {
	assert.Nil(t, ValidateScheduling(validInput()))
}

func TestValidateScheduling_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SchedulingInput)
		field  string
		msg    string
	}{
		{"short cpf", func(in *SchedulingInput) { in.RequesterTaxID = "1234567890" }, "cpfSolicitante", "O CPF deve ter 11 dígitos."},
		{"cpf with letters", func(in *SchedulingInput) { in.RequesterTaxID = "1234567890a" }, "cpfSolicitante", "O CPF deve ter 11 dígitos."},
		{"contact without mask", func(in *SchedulingInput) { in.RequesterContact = "11912345678" }, "contatoSolicitante", "O contato deve estar no formato (00) 00000-0000."},
		{"short name", func(in *SchedulingInput) { in.RequesterName = "Jo" }, "nomeSolicitante", "O nome deve ter pelo menos 3 caracteres."},
		{"blank name", func(in *SchedulingInput) { in.RequesterName = "   " }, "nomeSolicitante", "O nome deve ter pelo menos 3 caracteres."},
		{"name padded to length", func(in *SchedulingInput) { in.RequesterName = " Jo " }, "nomeSolicitante", "O nome deve ter pelo menos 3 caracteres."},
		{"contact with tab", func(in *SchedulingInput) { in.RequesterContact = "(11)\t91234-5678" }, "contatoSolicitante", "O contato deve estar no formato (00) 00000-0000."},
		{"missing address", func(in *SchedulingInput) { in.Address = "" }, "enderecoSolicitante", "O endereço é obrigatório."},
		{"missing service type", func(in *SchedulingInput) { in.ServiceTypeID = 0 }, "tipoServico", "O tipo de serviço é obrigatório."},
		{"bad date", func(in *SchedulingInput) { in.Date = "20/11/2026" }, "dataAgendamento", "A data do agendamento é inválida."},
		{"bad time", func(in *SchedulingInput) { in.StartTime = "9h" }, "horario", "O horário deve estar no formato HH:MM."},
		{"missing description", func(in *SchedulingInput) { in.Description = "" }, "descricaoServico", "A descrição do serviço é obrigatória."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := ValidateScheduling(in)
			require.NotNil(t, errs)
			assert.Equal(t, tt.msg, errs[tt.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateScheduling_StreetNumberOptional(t *testing.T) {
	in := validInput()
	in.StreetNumber = ""
	assert.Nil(t, ValidateScheduling(in))
}

func TestValidateScheduling_CollectsAllViolations(t *testing.T) {
	errs := ValidateScheduling(SchedulingInput{})
	require.NotNil(t, errs)

	for _, field := range []string{
		"nomeSolicitante",
		"cpfSolicitante",
		"contatoSolicitante",
		"enderecoSolicitante",
		"bairroSolicitante",
		"tipoServico",
		"dataAgendamento",
		"horario",
		"descricaoServico",
	} {
		assert.Contains(t, errs, field)
	}
	assert.NotContains(t, errs, "numeroSolicitante")
	assert.NotContains(t, errs, "horarioFim")
}

func TestValidateScheduling_Window(t *testing.T) {
	in := validInput()
	in.Ranged = true

	errs := ValidateScheduling(in)
	require.NotNil(t, errs)
	assert.Equal(t, "O horário de término é obrigatório.", errs["horarioFim"])

	in.EndTime = "09:00"
	errs = ValidateScheduling(in)
	require.NotNil(t, errs)
	assert.Equal(t, "O horário de término deve ser posterior ao de início.", errs["horarioFim"])

	in.EndTime = "09:30"
	assert.NotNil(t, ValidateScheduling(in))

	in.EndTime = "11:00"
	assert.Nil(t, ValidateScheduling(in))
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"horario": "x", "cpfSolicitante": "y"}
	assert.Equal(t, "validation failed: cpfSolicitante, horario", fe.Error())
}
