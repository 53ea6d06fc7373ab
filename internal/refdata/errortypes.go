// File path: internal/refdata/errortypes.go
package refdata

// TipoErro is one entry of the declaration error catalogue. Base costs are
// flat BRL amounts; the percentual applies over the shipment value up to
// the stated maximum.
type TipoErro struct {
	Codigo          string `json:"codigo"`
	Nome            string `json:"nome"`
	Descricao       string `json:"descricao"`
	Categoria       string `json:"categoria"`
	CustoBase       string `json:"custoBase"`
	CustoPercentual string `json:"custoPercentual"`
	CustoMaximo     string `json:"custoMaximo"`
	DiasAtrasoMedio int    `json:"diasAtrasoMedio"`
	Severidade      string `json:"severidade"`
}

var tiposErro = []TipoErro{
	{Codigo: "NCM_INVALIDO", Nome: "NCM inválido ou inexistente", Descricao: "Código de classificação fora do formato de 8 dígitos ou ausente da nomenclatura vigente.", Categoria: "classificacao", CustoBase: "500.00", CustoPercentual: "1.00", CustoMaximo: "2000.00", DiasAtrasoMedio: 3, Severidade: "ALTA"},
	{Codigo: "NCM_AUSENTE", Nome: "NCM não informado", Descricao: "Item sem código de classificação fiscal.", Categoria: "classificacao", CustoBase: "0.00", CustoPercentual: "0.00", CustoMaximo: "0.00", DiasAtrasoMedio: 1, Severidade: "MEDIA"},
	{Codigo: "SUBFATURAMENTO", Nome: "Suspeita de subfaturamento", Descricao: "Valor declarado por quilograma abaixo do parâmetro mínimo de canal.", Categoria: "valoracao", CustoBase: "5000.00", CustoPercentual: "30.00", CustoMaximo: "15000.00", DiasAtrasoMedio: 7, Severidade: "CRITICA"},
	{Codigo: "ANUENTE_AUSENTE", Nome: "Anuência não indicada", Descricao: "Setor regulado sem órgão anuente selecionado na operação.", Categoria: "licenciamento", CustoBase: "2000.00", CustoPercentual: "5.00", CustoMaximo: "5000.00", DiasAtrasoMedio: 5, Severidade: "ALTA"},
	{Codigo: "LPCO_NAO_PROTOCOLADO", Nome: "LPCO não protocolado", Descricao: "Licença de importação exigida para o setor e não protocolada antes do embarque.", Categoria: "licenciamento", CustoBase: "10000.00", CustoPercentual: "10.00", CustoMaximo: "40000.00", DiasAtrasoMedio: 12, Severidade: "CRITICA"},
	{Codigo: "DIVERGENCIA_VALOR", Nome: "Divergência de valor aduaneiro", Descricao: "Soma dos itens não confere com o total da fatura.", Categoria: "valoracao", CustoBase: "1000.00", CustoPercentual: "2.00", CustoMaximo: "10000.00", DiasAtrasoMedio: 4, Severidade: "MEDIA"},
	{Codigo: "PESO_AUSENTE", Nome: "Peso líquido não informado", Descricao: "Item sem peso líquido, requerido para o cálculo de frete e parametrização.", Categoria: "logistica", CustoBase: "300.00", CustoPercentual: "0.00", CustoMaximo: "300.00", DiasAtrasoMedio: 1, Severidade: "BAIXA"},
}

// TiposErro returns the declaration error catalogue.
func TiposErro() []TipoErro {
	out := make([]TipoErro, len(tiposErro))
	copy(out, tiposErro)
	return out
}

// TipoErroByCodigo looks an error type up by code.
func TipoErroByCodigo(codigo string) (TipoErro, bool) {
	for _, t := range tiposErro {
		if t.Codigo == codigo {
			return t, true
		}
	}
	return TipoErro{}, false
}
