// File path: internal/refdata/ncm.go
package refdata

import "strings"

// NCMEntry is a row of the bundled Mercosur nomenclature extract. Rates
// are the ad valorem percentages for import duty (II) and IPI.
type NCMEntry struct {
	NCM         string   `json:"ncm"`
	Descricao   string   `json:"descricao"`
	AliquotaII  string   `json:"aliquotaIi"`
	AliquotaIPI string   `json:"aliquotaIpi"`
	Anuentes    []string `json:"anuentes"`
	RequerLPCO  bool     `json:"requerLpco"`
	Setor       string   `json:"setor"`
}

// A working extract of the NCM table covering the sectors the demo
// invoices exercise. The full nomenclature has ~10k codes; reference
// lookups beyond this extract fall through to "not found".
var ncmTable = []NCMEntry{
	{NCM: "85171231", Descricao: "Telefones celulares", AliquotaII: "16.00", AliquotaIPI: "15.00", Anuentes: []string{"ANATEL"}, RequerLPCO: true, Setor: "Eletrônicos"},
	{NCM: "85176259", Descricao: "Aparelhos para recepção/transmissão de voz e dados", AliquotaII: "16.00", AliquotaIPI: "15.00", Anuentes: []string{"ANATEL"}, RequerLPCO: true, Setor: "Eletrônicos"},
	{NCM: "84713012", Descricao: "Máquinas automáticas para processamento de dados, portáteis", AliquotaII: "16.00", AliquotaIPI: "10.00", Anuentes: nil, RequerLPCO: false, Setor: "Eletrônicos"},
	{NCM: "33049910", Descricao: "Cremes de beleza e produtos para a pele", AliquotaII: "18.00", AliquotaIPI: "22.00", Anuentes: []string{"ANVISA"}, RequerLPCO: true, Setor: "Cosméticos"},
	{NCM: "33051000", Descricao: "Xampus para os cabelos", AliquotaII: "18.00", AliquotaIPI: "7.00", Anuentes: []string{"ANVISA"}, RequerLPCO: true, Setor: "Cosméticos"},
	{NCM: "21069090", Descricao: "Preparações alimentícias não especificadas", AliquotaII: "16.00", AliquotaIPI: "0.00", Anuentes: []string{"MAPA", "ANVISA"}, RequerLPCO: true, Setor: "Alimentos"},
	{NCM: "22029900", Descricao: "Bebidas não alcoólicas", AliquotaII: "20.00", AliquotaIPI: "4.00", Anuentes: []string{"MAPA"}, RequerLPCO: true, Setor: "Alimentos"},
	{NCM: "29159000", Descricao: "Ácidos monocarboxílicos acíclicos saturados", AliquotaII: "12.00", AliquotaIPI: "0.00", Anuentes: []string{"IBAMA"}, RequerLPCO: true, Setor: "Químicos"},
	{NCM: "38249999", Descricao: "Produtos químicos e preparações não especificados", AliquotaII: "14.00", AliquotaIPI: "0.00", Anuentes: []string{"IBAMA"}, RequerLPCO: false, Setor: "Químicos"},
	{NCM: "95030099", Descricao: "Outros brinquedos", AliquotaII: "35.00", AliquotaIPI: "10.00", Anuentes: []string{"INMETRO"}, RequerLPCO: false, Setor: "Brinquedos"},
	{NCM: "90189099", Descricao: "Instrumentos e aparelhos para medicina", AliquotaII: "0.00", AliquotaIPI: "0.00", Anuentes: []string{"ANVISA"}, RequerLPCO: true, Setor: "Médico"},
	{NCM: "61091000", Descricao: "Camisetas de malha de algodão", AliquotaII: "35.00", AliquotaIPI: "5.00", Anuentes: nil, RequerLPCO: false, Setor: "Têxteis"},
	{NCM: "62034200", Descricao: "Calças de algodão, uso masculino", AliquotaII: "35.00", AliquotaIPI: "5.00", Anuentes: nil, RequerLPCO: false, Setor: "Têxteis"},
	{NCM: "84099190", Descricao: "Partes para motores de explosão", AliquotaII: "14.00", AliquotaIPI: "5.00", Anuentes: []string{"INMETRO"}, RequerLPCO: false, Setor: "Automotivo"},
	{NCM: "87089990", Descricao: "Outras partes e acessórios para veículos automóveis", AliquotaII: "16.00", AliquotaIPI: "5.00", Anuentes: []string{"INMETRO"}, RequerLPCO: false, Setor: "Automotivo"},
	{NCM: "84818092", Descricao: "Válvulas solenóides", AliquotaII: "14.00", AliquotaIPI: "8.00", Anuentes: nil, RequerLPCO: false, Setor: "Máquinas"},
	{NCM: "84212990", Descricao: "Aparelhos para filtrar ou depurar líquidos", AliquotaII: "14.00", AliquotaIPI: "0.00", Anuentes: nil, RequerLPCO: false, Setor: "Máquinas"},
	{NCM: "39269090", Descricao: "Outras obras de plástico", AliquotaII: "18.00", AliquotaIPI: "10.00", Anuentes: nil, RequerLPCO: false, Setor: "Outros"},
	{NCM: "73181500", Descricao: "Parafusos e pinos, roscados, de ferro ou aço", AliquotaII: "16.00", AliquotaIPI: "10.00", Anuentes: nil, RequerLPCO: false, Setor: "Construção"},
	{NCM: "30049099", Descricao: "Outros medicamentos em doses", AliquotaII: "8.00", AliquotaIPI: "0.00", Anuentes: []string{"ANVISA"}, RequerLPCO: true, Setor: "Farmacêutico"},
}

// NCMByCode returns the nomenclature entry for an exact 8-digit code.
func NCMByCode(code string) (NCMEntry, bool) {
	for _, e := range ncmTable {
		if e.NCM == code {
			return e, true
		}
	}
	return NCMEntry{}, false
}

// SearchNCM matches entries whose code starts with the query or whose
// description contains it (case-insensitive). Results are capped at limit;
// limit <= 0 means no cap.
func SearchNCM(query string, limit int) []NCMEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []NCMEntry
	for _, e := range ncmTable {
		if strings.HasPrefix(e.NCM, q) || strings.Contains(strings.ToLower(e.Descricao), q) {
			out = append(out, e)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}
