package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates devolve o conjunto de templates da página, pronto para
// gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(
		template.New("").
			Funcs(template.FuncMap{
				"date": timezone.FormatDate,
				"dict": dict,
			}).
			ParseFS(templateFS, "templates/*.html"),
	)
}

// dict monta o argumento de um sub-template a partir de pares chave/valor.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
