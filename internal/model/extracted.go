// File path: internal/model/extracted.go
package model

// Confidence is the extraction engine's self-reported certainty for a
// suggested NCM classification.
type Confidence string

const (
	ConfidenceHigh   Confidence = "ALTA"
	ConfidenceMedium Confidence = "MEDIA"
	ConfidenceLow    Confidence = "BAIXA"
)

// Supplier identifies the foreign exporter on the invoice.
type Supplier struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Country string `json:"country"`
}

// Buyer identifies the Brazilian importer on the invoice.
type Buyer struct {
	Name string `json:"name"`
	CNPJ string `json:"cnpj"`
}

// ConfidenceAlert flags a suggested NCM that needs human review before the
// declaration can be filed.
type ConfidenceAlert struct {
	Level   string `json:"level"` // "warning" or "error"
	Message string `json:"message"`
	Reason  string `json:"reason"` // "generic_ncm" or "not_found"
}

// ExtractedItem is one product line as read from the commercial invoice.
type ExtractedItem struct {
	Description    string           `json:"description"`
	Quantity       float64          `json:"quantity"`
	Unit           string           `json:"unit"`
	UnitPrice      float64          `json:"unit_price"`
	TotalPrice     float64          `json:"total_price"`
	NCMSugerido    *string          `json:"ncm_sugerido"`
	NCMDescricao   string           `json:"ncm_descricao,omitempty"`
	NCMConfianca   Confidence       `json:"ncm_confianca,omitempty"`
	PesoKg         *float64         `json:"peso_kg"`
	Origem         *string          `json:"origem"`
	Anuentes       []string         `json:"anuentes_necessarios,omitempty"`
	ConfidenceNote *ConfidenceAlert `json:"confidence_alert,omitempty"`
}

// EstimatedTaxes carries the import tax estimate produced during
// extraction. Values are in BRL.
type EstimatedTaxes struct {
	II            float64 `json:"ii"`
	IPI           float64 `json:"ipi"`
	PISCofins     float64 `json:"pis_cofins"`
	TotalImpostos float64 `json:"total_impostos"`
	BaseCalculo   float64 `json:"base_calculo"`
}

// ExtractedData is the structured reading of a commercial invoice. Field
// names follow the document-processing contract the web client consumes.
type ExtractedData struct {
	InvoiceNumber        string          `json:"invoice_number"`
	InvoiceDate          string          `json:"invoice_date"`
	Supplier             Supplier        `json:"supplier"`
	Buyer                Buyer           `json:"buyer"`
	Incoterm             *string         `json:"incoterm"`
	Currency             string          `json:"currency"`
	TotalValue           float64         `json:"total_value"`
	Freight              *float64        `json:"freight"`
	Insurance            *float64        `json:"insurance"`
	Items                []ExtractedItem `json:"items"`
	Observacoes          []string        `json:"observacoes"`
	CamposFaltando       []string        `json:"campos_faltando"`
	SetorDetectado       string          `json:"setor_detectado,omitempty"`
	AnuentesOperacao     []string        `json:"anuentes_operacao,omitempty"`
	FeedbackEspecialista string          `json:"feedback_especialista,omitempty"`
	ImpostosEstimados    *EstimatedTaxes `json:"impostos_estimados,omitempty"`
	DescricaoDI          string          `json:"descricao_di,omitempty"`
	AlertaSubfaturamento *string         `json:"alerta_subfaturamento,omitempty"`
}
