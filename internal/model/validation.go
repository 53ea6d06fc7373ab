// File path: internal/model/validation.go
package model

// Validacao is one field-level check of the extracted declaration data.
type Validacao struct {
	Campo             string      `json:"campo"`
	ValorEncontrado   interface{} `json:"valor_encontrado"`
	ValorEsperado     interface{} `json:"valor_esperado"`
	Status            string      `json:"status"` // OK, ALERTA, ERRO
	CodigoErro        string      `json:"codigo_erro,omitempty"`
	Explicacao        string      `json:"explicacao"`
	Fonte             string      `json:"fonte"`
	SugestaoCorrecao  string      `json:"sugestao_correcao,omitempty"`
}

// ErroDetectado is a confirmed declaration error with its estimated cost.
type ErroDetectado struct {
	TipoErro      string      `json:"tipo_erro"`
	Campo         string      `json:"campo"`
	ValorOriginal interface{} `json:"valor_original"`
	ValorEsperado interface{} `json:"valor_esperado"`
	Explicacao    string      `json:"explicacao"`
	Fonte         string      `json:"fonte"`
	CustoEstimado float64     `json:"custo_estimado,omitempty"`
	Severidade    string      `json:"severidade,omitempty"`
}

// CustoDetalhe itemises the cost estimate for one detected error.
type CustoDetalhe struct {
	Erro           string  `json:"erro"`
	CustoMulta     float64 `json:"custoMulta"`
	CustoDemurrage float64 `json:"custoDemurrage"`
	DiasAtraso     int     `json:"diasAtraso"`
	Calculo        string  `json:"calculo"`
}

// Custos totals the avoidable cost across every detected error.
type Custos struct {
	CustoMultas        float64        `json:"custoMultas"`
	CustoDemurrage     float64        `json:"custoDemurrage"`
	CustoTotal         float64        `json:"custoTotal"`
	DiasAtrasoEstimado int            `json:"diasAtrasoEstimado"`
	Detalhamento       []CustoDetalhe `json:"detalhamento"`
}

// ValidationResult is the outcome of validating one operation.
type ValidationResult struct {
	Validacoes          []Validacao     `json:"validacoes"`
	Erros               []ErroDetectado `json:"erros"`
	Custos              Custos          `json:"custos"`
	AnuentesNecessarios []string        `json:"anuentes_necessarios"`
	RiscoGeral          string          `json:"risco_geral"` // BAIXO, MEDIO, ALTO, CRITICO
}
