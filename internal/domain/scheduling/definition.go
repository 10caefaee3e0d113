package scheduling

import (
	"fmt"
	"strings"
)

// ===============================
// Time Mode
// ===============================

type TimeMode string

const (
	// TimeModeSingle agenda um único horário (horario).
	TimeModeSingle TimeMode = "single"
	// TimeModeWindow agenda uma janela com início e fim (horario / horarioFim).
	TimeModeWindow TimeMode = "window"
)

// ===============================
// Definition
// ===============================

// Definition descreve uma fatia de agendamento: prefixo REST, regras de
// horário e rota de listagem da página.
type Definition struct {
	Name      string   `toml:"name"`
	Prefix    string   `toml:"prefix"`
	Label     string   `toml:"label"`
	TimeMode  TimeMode `toml:"time_mode"`
	ListRoute string   `toml:"list_route"`
}

func (d Definition) Ranged() bool {
	return d.TimeMode == TimeModeWindow
}

func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition: name is required")
	}
	if !strings.HasPrefix(d.Prefix, "/") || strings.HasSuffix(d.Prefix, "/") {
		return fmt.Errorf("definition %q: prefix must start and not end with '/'", d.Name)
	}
	switch d.TimeMode {
	case TimeModeSingle, TimeModeWindow:
	default:
		return fmt.Errorf("definition %q: unknown time mode %q", d.Name, d.TimeMode)
	}
	return nil
}

// withDefaults preenche os campos opcionais a partir do nome.
func (d Definition) withDefaults() Definition {
	if d.Prefix == "" && d.Name != "" {
		d.Prefix = "/" + d.Name
	}
	if d.Label == "" {
		d.Label = "agendamento"
	}
	if d.TimeMode == "" {
		d.TimeMode = TimeModeSingle
	}
	if d.ListRoute == "" {
		d.ListRoute = "/web" + d.Prefix
	}
	return d
}

func DefaultDefinitions() []Definition {
	return []Definition{
		Definition{
			Name:     "realizaragserv",
			Label:    "agendamento de serviço",
			TimeMode: TimeModeSingle,
		}.withDefaults(),
		Definition{
			Name:     "agendamentos",
			Label:    "agendamento",
			TimeMode: TimeModeWindow,
		}.withDefaults(),
	}
}

// Normalize aplica defaults e valida; nomes e prefixos não podem se repetir.
func Normalize(defs []Definition) ([]Definition, error) {
	seenName := map[string]bool{}
	seenPrefix := map[string]bool{}

	out := make([]Definition, 0, len(defs))
	for _, d := range defs {
		d = d.withDefaults()
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if seenName[d.Name] || seenPrefix[d.Prefix] {
			return nil, fmt.Errorf("definition %q: duplicated name or prefix", d.Name)
		}
		seenName[d.Name] = true
		seenPrefix[d.Prefix] = true
		out = append(out, d)
	}
	return out, nil
}
