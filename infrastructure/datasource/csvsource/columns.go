package csvsource

import (
	"strings"
)

// Prefixo de contagem usado nas colunas do arquivo do negócio (ex.: "# of orders")
const countMarkerPrefix = "# of "

// Sinônimos conhecidos de nomes de coluna, já em forma normalizada
var columnSynonyms = map[string]string{
	"impression":        "impressions",
	"attribute_revenue": "attributed_revenue",
}

// canonicalColumn normaliza um nome de coluna cru para o esquema canônico:
// minúsculas, prefixo de contagem removido, espaços trocados por "_" e
// sinônimos conhecidos unificados.
func canonicalColumn(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimPrefix(name, countMarkerPrefix)
	name = strings.Join(strings.Fields(name), "_")

	if canonical, ok := columnSynonyms[name]; ok {
		return canonical
	}

	return name
}
