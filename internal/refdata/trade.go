// File path: internal/refdata/trade.go
package refdata

// Moeda is a negotiable currency with its display symbol.
type Moeda struct {
	Codigo  string `json:"codigo"`
	Nome    string `json:"nome"`
	Simbolo string `json:"simbolo"`
}

// Moedas lists the currencies the declaration form accepts.
var Moedas = []Moeda{
	{Codigo: "USD", Nome: "Dólar Americano", Simbolo: "$"},
	{Codigo: "EUR", Nome: "Euro", Simbolo: "€"},
	{Codigo: "CNY", Nome: "Yuan Chinês", Simbolo: "¥"},
	{Codigo: "GBP", Nome: "Libra Esterlina", Simbolo: "£"},
	{Codigo: "JPY", Nome: "Iene Japonês", Simbolo: "¥"},
	{Codigo: "BRL", Nome: "Real Brasileiro", Simbolo: "R$"},
}

// Incoterm is a standard trade term.
type Incoterm struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

// Incoterms lists the supported trade terms.
var Incoterms = []Incoterm{
	{Codigo: "EXW", Nome: "Ex Works"},
	{Codigo: "FCA", Nome: "Free Carrier"},
	{Codigo: "FAS", Nome: "Free Alongside Ship"},
	{Codigo: "FOB", Nome: "Free On Board"},
	{Codigo: "CFR", Nome: "Cost and Freight"},
	{Codigo: "CIF", Nome: "Cost, Insurance and Freight"},
	{Codigo: "CPT", Nome: "Carriage Paid To"},
	{Codigo: "CIP", Nome: "Carriage and Insurance Paid To"},
	{Codigo: "DAP", Nome: "Delivered at Place"},
	{Codigo: "DPU", Nome: "Delivered at Place Unloaded"},
	{Codigo: "DDP", Nome: "Delivered Duty Paid"},
}

// ValidIncoterm reports whether the code is a known trade term.
func ValidIncoterm(codigo string) bool {
	for _, i := range Incoterms {
		if i.Codigo == codigo {
			return true
		}
	}
	return false
}

// PaisesImportadores lists the most frequent origin countries for
// Brazilian imports, used to populate the origin selector.
var PaisesImportadores = []string{
	"China", "Estados Unidos", "Alemanha", "Argentina", "Índia",
	"Coreia do Sul", "Itália", "Japão", "França", "México",
	"Reino Unido", "Chile", "Espanha", "Rússia", "Países Baixos",
	"Canadá", "Paraguai", "Taiwan", "Suíça", "Bélgica",
	"Colômbia", "Vietnã", "Tailândia", "Malásia", "Arábia Saudita",
	"Nigéria", "Indonésia", "Portugal", "Peru", "Uruguai",
}
