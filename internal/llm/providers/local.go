// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"fmt"
	"strings"
)

// Message is one turn of a chat exchange.
type Message struct {
	Role    string
	Content string
}

// Provider abstracts the AI backend used for document extraction.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// LocalProvider is the no-credentials fallback: it answers extraction
// prompts with a fixed sample invoice so the demo flow works offline.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// sampleInvoiceJSON is the canned extraction the local provider returns.
// It intentionally includes one weak classification so the review flow
// has something to show.
const sampleInvoiceJSON = `{
  "invoice_number": "INV-DEMO-0001",
  "invoice_date": "2025-08-01",
  "supplier": {"name": "Shenzhen Electronics Co", "address": "18 Keji Road, Shenzhen", "country": "China"},
  "buyer": {"name": "Importadora Demo Ltda", "cnpj": "12.345.678/0001-90"},
  "incoterm": "FOB",
  "currency": "USD",
  "total_value": 5000,
  "freight": 400,
  "insurance": 50,
  "items": [
    {
      "description": "Telefone celular modelo X200",
      "quantity": 100,
      "unit": "UN",
      "unit_price": 45,
      "total_price": 4500,
      "ncm_sugerido": "85171231",
      "ncm_confianca": "ALTA",
      "peso_kg": 25,
      "origem": "China"
    },
    {
      "description": "Carregador USB-C",
      "quantity": 100,
      "unit": "UN",
      "unit_price": 5,
      "total_price": 500,
      "ncm_sugerido": "85044000",
      "ncm_confianca": "BAIXA",
      "peso_kg": 10,
      "origem": "China"
    }
  ],
  "observacoes": ["Fatura de demonstração gerada localmente"],
  "campos_faltando": [],
  "setor_detectado": "Eletrônicos"
}`

func (l *LocalProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	last := messages[len(messages)-1].Content
	if strings.Contains(strings.ToLower(last), "invoice") || strings.Contains(strings.ToLower(last), "fatura") {
		return sampleInvoiceJSON, nil
	}
	return "[local] " + strings.TrimSpace(last), nil
}

func (l *LocalProvider) Name() string {
	return "local"
}
