// File path: internal/model/item.go
package model

// LineItem is one editable row of the declaration worksheet. Numeric
// fields stay as the free text the user typed (or the extractor filled
// in); each consumer applies its own parsing policy.
type LineItem struct {
	Description   string     `json:"description"`
	NCM           string     `json:"ncm"`
	Weight        string     `json:"weight"`     // kg
	TotalValue    string     `json:"totalValue"` // invoice currency
	UnitPrice     string     `json:"unitPrice"`
	Quantity      string     `json:"quantity"` // combined "NUMBER UNIT", e.g. "100 UN"
	OriginCountry string     `json:"originCountry"`
	NCMConfianca  Confidence `json:"ncmConfianca,omitempty"`
}

// OperationContext is the metadata shared by every item of one
// declaration.
type OperationContext struct {
	OperationType string `json:"operationType"` // Por Conta Própria, Conta e Ordem, Encomenda
	CustomsOffice string `json:"customsOffice"` // URF de despacho
	OriginCountry string `json:"originCountry"`
	Modality      string `json:"modality"`
	Sector        string `json:"sector"`
}

// ComplianceSelection records which regulatory steps the declarant claims
// to have covered.
type ComplianceSelection struct {
	SelectedAgencies []string `json:"selectedAgencies"`
	LPCORequested    bool     `json:"lpcoRequested"`
}
