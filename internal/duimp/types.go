// File path: internal/duimp/types.go

// Package duimp assembles and validates the normalized export record for
// a draft import declaration, and renders the Siscomex XML the Portal
// Único intake accepts.
package duimp

// Importador identifies the Brazilian declarant.
type Importador struct {
	CNPJ string `json:"cnpj" xml:"cnpj"`
	Nome string `json:"nome" xml:"nome"`
	UF   string `json:"uf,omitempty" xml:"uf,omitempty"`
}

// Exportador identifies the foreign shipper.
type Exportador struct {
	Nome string `json:"nome" xml:"nome"`
	Pais string `json:"pais" xml:"pais"`
}

// Item is one addition line of the declaration.
type Item struct {
	Sequencial    int      `json:"sequencial" xml:"sequencial,attr"`
	NCM           string   `json:"ncm" xml:"ncm"`
	Descricao     string   `json:"descricao" xml:"descricao"`
	Quantidade    float64  `json:"quantidade" xml:"quantidade"`
	Unidade       string   `json:"unidade" xml:"unidade"`
	ValorUnitario float64  `json:"valorUnitario" xml:"valorUnitario"`
	ValorTotal    float64  `json:"valorTotal" xml:"valorTotal"`
	PesoLiquido   float64  `json:"pesoLiquido" xml:"pesoLiquido"`
	PesoBruto     float64  `json:"pesoBruto" xml:"pesoBruto"`
	PaisOrigem    string   `json:"paisOrigem" xml:"paisOrigem"`
	Fabricante    string   `json:"fabricante,omitempty" xml:"fabricante,omitempty"`
	Anuentes      []string `json:"anuentes,omitempty" xml:"anuentes>anuente,omitempty"`
}

// Totais carries the declaration value summary.
type Totais struct {
	ValorMercadoria float64 `json:"valorMercadoria" xml:"valorMercadoria"`
	Frete           float64 `json:"frete" xml:"frete"`
	Seguro          float64 `json:"seguro" xml:"seguro"`
	ValorAduaneiro  float64 `json:"valorAduaneiro" xml:"valorAduaneiro"`
}

// ExportData is the normalized declaration record the XML generator
// consumes. JSON names match the preview payload the web client renders.
type ExportData struct {
	NumeroReferencia string     `json:"numeroReferencia"`
	DataEmbarque     string     `json:"dataEmbarque"`
	Incoterm         string     `json:"incoterm"`
	Moeda            string     `json:"moeda"`
	CodigoURF        string     `json:"codigoURF"`
	ViaTransporte    string     `json:"viaTransporte"`
	TipoDeclaracao   string     `json:"tipoDeclaracao"`
	Importador       Importador `json:"importador"`
	Exportador       Exportador `json:"exportador"`
	Itens            []Item     `json:"itens"`
	Totais           Totais     `json:"totais"`
}

// Preview pairs the assembled record with its validation outcome. The
// XML download is only allowed when IsValid is true.
type Preview struct {
	ExportData       ExportData `json:"exportData"`
	ValidationErrors []string   `json:"validationErrors"`
	IsValid          bool       `json:"isValid"`
}

// ImportadorOverride patches declarant identity fields.
type ImportadorOverride struct {
	CNPJ *string `json:"cnpj,omitempty"`
	Nome *string `json:"nome,omitempty"`
	UF   *string `json:"uf,omitempty"`
}

// ItemOverride patches one worksheet row. Absent fields (nil) keep the
// extracted value; the quantity and numeric fields are already parsed by
// BuildOverrides under the locale-tolerant policy.
type ItemOverride struct {
	Sequencial    int      `json:"sequencial,omitempty"`
	NCM           *string  `json:"ncm,omitempty"`
	Descricao     *string  `json:"descricao,omitempty"`
	Quantidade    *float64 `json:"quantidade,omitempty"`
	Unidade       *string  `json:"unidade,omitempty"`
	ValorUnitario *float64 `json:"valorUnitario,omitempty"`
	ValorTotal    *float64 `json:"valorTotal,omitempty"`
	PesoLiquido   *float64 `json:"pesoLiquido,omitempty"`
	PaisOrigem    *string  `json:"paisOrigem,omitempty"`
}

// Overrides is the user-supplied patch applied over the extracted data
// when assembling the export record.
type Overrides struct {
	NumeroReferencia *string             `json:"numeroReferencia,omitempty"`
	DataEmbarque     *string             `json:"dataEmbarque,omitempty"`
	Incoterm         *string             `json:"incoterm,omitempty"`
	Moeda            *string             `json:"moeda,omitempty"`
	CodigoURF        *string             `json:"codigo_urf,omitempty"`
	ViaTransporte    *string             `json:"via_transporte,omitempty"`
	TipoDeclaracao   *string             `json:"tipo_declaracao,omitempty"`
	Importador       *ImportadorOverride `json:"importador,omitempty"`
	Itens            []ItemOverride      `json:"items,omitempty"`
	Frete            *float64            `json:"frete,omitempty"`
	Seguro           *float64            `json:"seguro,omitempty"`
	ValorTotal       *float64            `json:"total_value,omitempty"`
}

// DeclarantFields is the raw form state of the declaration step: free
// text exactly as typed, before any numeric parsing.
type DeclarantFields struct {
	NumeroReferencia string `json:"numeroReferencia"`
	CPFCNPJ          string `json:"cpfCnpjDeclarante"`
	Nome             string `json:"nomeDeclarante"`
	UF               string `json:"ufDeclarante"`
	Incoterm         string `json:"incoterm"`
	Moeda            string `json:"moedaNegociada"`
	URFDespacho      string `json:"urfDespacho"`
	ViaTransporte    string `json:"viaTransporte"`
	TipoDeclaracao   string `json:"tipoDeclaracao"`
	DataEmbarque     string `json:"dataEmbarque"`
	Frete            string `json:"frete"`
	Seguro           string `json:"seguro"`
	ValorTotal       string `json:"valorFobMoeda"`
}
