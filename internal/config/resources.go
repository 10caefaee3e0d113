package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
)

type resourcesFile struct {
	Resources []scheduling.Definition `toml:"resource"`
}

// LoadDefinitions devolve as definições padrão quando path é vazio; caso
// contrário lê o arquivo TOML, que substitui a lista inteira.
//
//	[[resource]]
//	name = "realizaragserv"
//	time_mode = "single"
func LoadDefinitions(path string) ([]scheduling.Definition, error) {
	if path == "" {
		return scheduling.DefaultDefinitions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseDefinitions(string(data))
}

// ParseDefinitions é LoadDefinitions para conteúdo já em memória.
func ParseDefinitions(data string) ([]scheduling.Definition, error) {
	var f resourcesFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("config: decode resources: %w", err)
	}
	if len(f.Resources) == 0 {
		return nil, fmt.Errorf("config: no [[resource]] entries")
	}
	return scheduling.Normalize(f.Resources)
}
