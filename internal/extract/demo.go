// File path: internal/extract/demo.go
package extract

import "strings"

// demoInvoices holds the canned invoice texts behind the no-upload demo
// flow. Keys are the slugs the client links to.
var demoInvoices = map[string]string{
	"eletronicos": `COMMERCIAL INVOICE INV-2025-0117
Date: 2025-07-14
Seller: Shenzhen Electronics Co., 18 Keji Road, Shenzhen, China
Buyer: Importadora Brasil Ltda, CNPJ 12.345.678/0001-90
Incoterm: FOB Shenzhen  Currency: USD
1. Smartphone model X200 - 100 UN x 45.00 = 4,500.00 (NCM 8517.12.31, 25 kg)
2. USB-C charger 20W - 100 UN x 5.00 = 500.00 (10 kg)
TOTAL: USD 5,000.00  Freight: 400.00  Insurance: 50.00`,

	"alimentos": `COMMERCIAL INVOICE FV-88412
Date: 2025-06-02
Seller: Mediterraneo Alimenti SRL, Via Roma 12, Napoli, Italy
Buyer: Sabores do Sul Comercio Ltda, CNPJ 98.765.432/0001-10
Incoterm: CIF Santos  Currency: EUR
1. Extra virgin olive oil 500ml - 1200 UN x 4.10 = 4,920.00 (1100 kg)
2. Durum wheat pasta 500g - 2000 UN x 0.90 = 1,800.00 (1050 kg)
TOTAL: EUR 6,720.00`,

	"quimicos": `COMMERCIAL INVOICE CH-2025-332
Date: 2025-05-20
Seller: Rhein Chemie GmbH, Industriestrasse 4, Ludwigshafen, Germany
Buyer: Quimica Industrial Paulista SA, CNPJ 11.222.333/0001-44
Incoterm: FOB Hamburg  Currency: USD
1. Polyethylene resin pellets - 10000 KG x 1.35 = 13,500.00
2. Industrial solvent drums 200L - 40 UN x 180.00 = 7,200.00 (8000 kg)
TOTAL: USD 20,700.00  Freight: 2,100.00`,
}

// DemoInvoice returns the canned invoice text for a demo slug.
func DemoInvoice(key string) (string, bool) {
	text, ok := demoInvoices[strings.ToLower(strings.TrimSpace(key))]
	return text, ok
}

// DemoKeys lists the available demo invoice slugs.
func DemoKeys() []string {
	keys := make([]string, 0, len(demoInvoices))
	for k := range demoInvoices {
		keys = append(keys, k)
	}
	return keys
}
