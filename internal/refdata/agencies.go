// File path: internal/refdata/agencies.go
package refdata

// Anuente is a government agency whose endorsement may be required before
// customs clearance. Fine ranges are in BRL and come from published
// penalty tables; release time is the historical median in business days.
type Anuente struct {
	Sigla              string `json:"sigla"`
	NomeCompleto       string `json:"nomeCompleto"`
	Descricao          string `json:"descricao"`
	MultaMinima        string `json:"multaMinima"`
	MultaMaxima        string `json:"multaMaxima"`
	TempoLiberacaoDias int    `json:"tempoLiberacaoDias"`
}

var anuentes = []Anuente{
	{Sigla: "ANVISA", NomeCompleto: "Agência Nacional de Vigilância Sanitária", Descricao: "Produtos sujeitos a vigilância sanitária: alimentos, cosméticos, medicamentos e dispositivos médicos.", MultaMinima: "2000.00", MultaMaxima: "1500000.00", TempoLiberacaoDias: 15},
	{Sigla: "MAPA", NomeCompleto: "Ministério da Agricultura, Pecuária e Abastecimento", Descricao: "Produtos de origem animal e vegetal, bebidas e insumos agropecuários.", MultaMinima: "1000.00", MultaMaxima: "500000.00", TempoLiberacaoDias: 10},
	{Sigla: "ANATEL", NomeCompleto: "Agência Nacional de Telecomunicações", Descricao: "Equipamentos de telecomunicações e produtos emissores de radiofrequência.", MultaMinima: "1500.00", MultaMaxima: "300000.00", TempoLiberacaoDias: 7},
	{Sigla: "INMETRO", NomeCompleto: "Instituto Nacional de Metrologia, Qualidade e Tecnologia", Descricao: "Produtos sujeitos a certificação compulsória: brinquedos, eletrodomésticos, componentes automotivos.", MultaMinima: "500.00", MultaMaxima: "200000.00", TempoLiberacaoDias: 5},
	{Sigla: "IBAMA", NomeCompleto: "Instituto Brasileiro do Meio Ambiente", Descricao: "Produtos químicos controlados, fauna, flora e resíduos.", MultaMinima: "5000.00", MultaMaxima: "2000000.00", TempoLiberacaoDias: 20},
	{Sigla: "ANP", NomeCompleto: "Agência Nacional do Petróleo, Gás Natural e Biocombustíveis", Descricao: "Derivados de petróleo, solventes e biocombustíveis.", MultaMinima: "5000.00", MultaMaxima: "1000000.00", TempoLiberacaoDias: 12},
	{Sigla: "DPF", NomeCompleto: "Departamento de Polícia Federal", Descricao: "Produtos químicos precursores e armas.", MultaMinima: "10000.00", MultaMaxima: "500000.00", TempoLiberacaoDias: 25},
	{Sigla: "CNEN", NomeCompleto: "Comissão Nacional de Energia Nuclear", Descricao: "Materiais radioativos e equipamentos correlatos.", MultaMinima: "20000.00", MultaMaxima: "3000000.00", TempoLiberacaoDias: 30},
	{Sigla: "SUFRAMA", NomeCompleto: "Superintendência da Zona Franca de Manaus", Descricao: "Operações destinadas à Zona Franca de Manaus.", MultaMinima: "1000.00", MultaMaxima: "100000.00", TempoLiberacaoDias: 5},
	{Sigla: "DECEX", NomeCompleto: "Departamento de Operações de Comércio Exterior", Descricao: "Licenciamento de operações sujeitas a controle comercial.", MultaMinima: "1000.00", MultaMaxima: "150000.00", TempoLiberacaoDias: 8},
}

// Anuentes returns the known agency catalogue.
func Anuentes() []Anuente {
	out := make([]Anuente, len(anuentes))
	copy(out, anuentes)
	return out
}

// AnuenteBySigla looks an agency up by its acronym.
func AnuenteBySigla(sigla string) (Anuente, bool) {
	for _, a := range anuentes {
		if a.Sigla == sigla {
			return a, true
		}
	}
	return Anuente{}, false
}
