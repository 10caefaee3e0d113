package scheduling

import "strings"

var likeReplacer = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike neutraliza os curingas do LIKE para que o termo seja
// comparado literalmente. O escape é a barra invertida, padrão do LIKE no
// PostgreSQL.
func EscapeLike(term string) string {
	return likeReplacer.Replace(term)
}

// ContainsPattern monta o padrão de substring usado na busca por nome.
func ContainsPattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}
