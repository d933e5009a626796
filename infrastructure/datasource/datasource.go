// Package datasource define a fronteira de ingestão dos arquivos de origem do dashboard
package datasource

import (
	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
)

// Source carrega as tabelas de origem já normalizadas. LoadMarketing retorna
// a tabela unificada de marketing, com cada registro etiquetado com sua
// plataforma e os três canais concatenados em ordem fixa (Facebook, Google,
// TikTok). LoadBusiness retorna a tabela diária do negócio.
type Source interface {
	LoadMarketing() ([]*domain.MarketingRecord, error)
	LoadBusiness() ([]*domain.BusinessDay, error)
}
