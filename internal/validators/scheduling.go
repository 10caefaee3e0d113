package validators

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

const minNameLength = 3

var (
	cpfPattern     = regexp.MustCompile(`^\d{11}$`)
	contatoPattern = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
)

// SchedulingInput é o corpo de criação/edição de uma solicitação, com os
// nomes de campo do formulário.
type SchedulingInput struct {
	RequesterName    string `json:"nomeSolicitante" validate:"required,nome"`
	RequesterTaxID   string `json:"cpfSolicitante" validate:"required,cpf"`
	RequesterContact string `json:"contatoSolicitante" validate:"required,contato"`
	Address          string `json:"enderecoSolicitante" validate:"required"`
	Neighborhood     string `json:"bairroSolicitante" validate:"required"`
	StreetNumber     string `json:"numeroSolicitante"`
	ServiceTypeID    uint   `json:"tipoServico" validate:"required"`
	Date             string `json:"dataAgendamento" validate:"required,data"`
	StartTime        string `json:"horario" validate:"required,horario"`
	EndTime          string `json:"horarioFim,omitempty" validate:"omitempty,horario"`
	Description      string `json:"descricaoServico" validate:"required"`

	// Exige horarioFim posterior a horario.
	Ranged bool `json:"-"`
}

// FieldErrors mapeia o nome do campo para a mensagem exibida.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

var messages = map[string]map[string]string{
	"nomeSolicitante": {
		"required": "O nome do solicitante é obrigatório.",
		"nome":     "O nome deve ter pelo menos 3 caracteres.",
	},
	"cpfSolicitante": {
		"required": "O CPF é obrigatório.",
		"cpf":      "O CPF deve ter 11 dígitos.",
	},
	"contatoSolicitante": {
		"required": "O contato é obrigatório.",
		"contato":  "O contato deve estar no formato (00) 00000-0000.",
	},
	"enderecoSolicitante": {
		"required": "O endereço é obrigatório.",
	},
	"bairroSolicitante": {
		"required": "O bairro é obrigatório.",
	},
	"tipoServico": {
		"required": "O tipo de serviço é obrigatório.",
	},
	"dataAgendamento": {
		"required": "A data do agendamento é obrigatória.",
		"data":     "A data do agendamento é inválida.",
	},
	"horario": {
		"required": "O horário é obrigatório.",
		"horario":  "O horário deve estar no formato HH:MM.",
	},
	"horarioFim": {
		"required": "O horário de término é obrigatório.",
		"horario":  "O horário de término deve estar no formato HH:MM.",
		"depois":   "O horário de término deve ser posterior ao de início.",
	},
	"descricaoServico": {
		"required": "A descrição do serviço é obrigatória.",
	},
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// espaços nas pontas não contam para o tamanho mínimo
		_ = v.RegisterValidation("nome", func(fl validator.FieldLevel) bool {
			return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= minNameLength
		})
		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return cpfPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("contato", func(fl validator.FieldLevel) bool {
			return contatoPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("data", func(fl validator.FieldLevel) bool {
			_, err := timezone.ParseDate(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("horario", func(fl validator.FieldLevel) bool {
			return timezone.ValidClock(fl.Field().String())
		})

		v.RegisterStructValidation(windowRule, SchedulingInput{})

		validate = v
	})
	return validate
}

func windowRule(sl validator.StructLevel) {
	in := sl.Current().Interface().(SchedulingInput)
	if !in.Ranged {
		return
	}
	if in.EndTime == "" {
		sl.ReportError(in.EndTime, "horarioFim", "EndTime", "required", "")
		return
	}
	// HH:MM com zero à esquerda ordena lexicograficamente.
	if timezone.ValidClock(in.StartTime) && timezone.ValidClock(in.EndTime) && in.EndTime <= in.StartTime {
		sl.ReportError(in.EndTime, "horarioFim", "EndTime", "depois", "")
	}
}

// ValidateScheduling aplica o schema inteiro e reúne todas as violações,
// uma mensagem por campo. Retorna nil quando o input é válido.
func ValidateScheduling(in SchedulingInput) FieldErrors {
	err := engine().Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = message(field, fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return "Valor inválido."
}
