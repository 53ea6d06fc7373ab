// File path: internal/compliance/validate.go
package compliance

import (
	"fmt"
	"math"
	"sort"

	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/refdata"
)

// Demurrage accrues per container-day once the free period lapses. Median
// terminal tariff used by the cost detailing.
const demurrageDailyRate = 850.0

// totalTolerance is the relative divergence allowed between the invoice
// total and the sum of its items before a valuation error is raised.
const totalTolerance = 0.01

// ValidateExtraction runs the field-level compliance checks over an
// extracted document and prices every confirmed error. It mirrors the
// estimator's rules but reports per-field outcomes instead of an
// aggregate band, and consults the error-type catalogue for costs.
func ValidateExtraction(data *model.ExtractedData, rate float64) model.ValidationResult {
	result := model.ValidationResult{
		Validacoes:          []model.Validacao{},
		Erros:               []model.ErroDetectado{},
		AnuentesNecessarios: []string{},
	}
	if data == nil {
		result.RiscoGeral = "BAIXO"
		return result
	}

	anuentes := map[string]bool{}
	itemsTotal := 0.0

	for i, item := range data.Items {
		label := fmt.Sprintf("items[%d].ncm", i)
		ncm := ""
		if item.NCMSugerido != nil {
			ncm = *item.NCMSugerido
		}
		switch {
		case DigitsOnly(ncm) == "":
			result.Validacoes = append(result.Validacoes, model.Validacao{
				Campo:            label,
				ValorEncontrado:  nil,
				Status:           "ALERTA",
				CodigoErro:       "NCM_AUSENTE",
				Explicacao:       "Item sem código de classificação fiscal.",
				Fonte:            "TEC/NCM",
				SugestaoCorrecao: "Informe o NCM de 8 dígitos do produto.",
			})
		case Score(ncm, rate) >= 85:
			result.Validacoes = append(result.Validacoes, model.Validacao{
				Campo:           label,
				ValorEncontrado: ncm,
				ValorEsperado:   "código de 8 dígitos",
				Status:          "ERRO",
				CodigoErro:      "NCM_INVALIDO",
				Explicacao:      "NCM fora do formato de 8 dígitos da nomenclatura.",
				Fonte:           "TEC/NCM",
			})
			result.Erros = append(result.Erros, erroFromCatalogue("NCM_INVALIDO", label, ncm, "código de 8 dígitos"))
		default:
			valid := model.Validacao{
				Campo:           label,
				ValorEncontrado: ncm,
				Status:          "OK",
				Explicacao:      "Formato de NCM válido.",
				Fonte:           "TEC/NCM",
			}
			if entry, ok := refdata.NCMByCode(DigitsOnly(ncm)); ok {
				valid.Explicacao = "NCM localizado na nomenclatura: " + entry.Descricao
				for _, a := range entry.Anuentes {
					anuentes[a] = true
				}
			}
			result.Validacoes = append(result.Validacoes, valid)
		}

		if item.PesoKg == nil || *item.PesoKg <= 0 {
			result.Validacoes = append(result.Validacoes, model.Validacao{
				Campo:            fmt.Sprintf("items[%d].peso_kg", i),
				ValorEncontrado:  nil,
				Status:           "ALERTA",
				CodigoErro:       "PESO_AUSENTE",
				Explicacao:       "Peso líquido não informado.",
				Fonte:            "Documento",
				SugestaoCorrecao: "Informe o peso líquido em kg.",
			})
		} else if item.TotalPrice < *item.PesoKg*underInvoiceFloorPerKg {
			campo := fmt.Sprintf("items[%d].total_price", i)
			result.Validacoes = append(result.Validacoes, model.Validacao{
				Campo:           campo,
				ValorEncontrado: item.TotalPrice,
				ValorEsperado:   fmt.Sprintf(">= %.2f", *item.PesoKg*underInvoiceFloorPerKg),
				Status:          "ERRO",
				CodigoErro:      "SUBFATURAMENTO",
				Explicacao:      "Valor declarado por quilograma abaixo do parâmetro mínimo.",
				Fonte:           "Parametrização RFB",
			})
			result.Erros = append(result.Erros, erroFromCatalogue("SUBFATURAMENTO", campo, item.TotalPrice, nil))
		}

		itemsTotal += item.TotalPrice
	}

	if data.TotalValue > 0 && len(data.Items) > 0 {
		if math.Abs(itemsTotal-data.TotalValue) > data.TotalValue*totalTolerance {
			result.Validacoes = append(result.Validacoes, model.Validacao{
				Campo:           "total_value",
				ValorEncontrado: data.TotalValue,
				ValorEsperado:   itemsTotal,
				Status:          "ERRO",
				CodigoErro:      "DIVERGENCIA_VALOR",
				Explicacao:      "Soma dos itens não confere com o total da fatura.",
				Fonte:           "Documento",
			})
			result.Erros = append(result.Erros, erroFromCatalogue("DIVERGENCIA_VALOR", "total_value", data.TotalValue, itemsTotal))
		} else {
			result.Validacoes = append(result.Validacoes, model.Validacao{
				Campo:           "total_value",
				ValorEncontrado: data.TotalValue,
				Status:          "OK",
				Explicacao:      "Total da fatura consistente com a soma dos itens.",
				Fonte:           "Documento",
			})
		}
	}

	for _, a := range refdata.AnuentesForSector(data.SetorDetectado) {
		anuentes[a] = true
	}
	if refdata.SectorRequiresAnuente(data.SetorDetectado) && len(data.AnuentesOperacao) == 0 {
		result.Validacoes = append(result.Validacoes, model.Validacao{
			Campo:           "anuentes_operacao",
			ValorEncontrado: nil,
			ValorEsperado:   refdata.AnuentesForSector(data.SetorDetectado),
			Status:          "ERRO",
			CodigoErro:      "ANUENTE_AUSENTE",
			Explicacao:      fmt.Sprintf("Setor %s regulado sem órgão anuente indicado.", data.SetorDetectado),
			Fonte:           "Portal Único",
		})
		result.Erros = append(result.Erros, erroFromCatalogue("ANUENTE_AUSENTE", "anuentes_operacao", nil, refdata.AnuentesForSector(data.SetorDetectado)))
	}

	for a := range anuentes {
		result.AnuentesNecessarios = append(result.AnuentesNecessarios, a)
	}
	sort.Strings(result.AnuentesNecessarios)

	result.Custos = priceErrors(result.Erros)
	result.RiscoGeral = overallRisk(result.Erros, result.Validacoes)
	return result
}

func erroFromCatalogue(codigo, campo string, original, esperado interface{}) model.ErroDetectado {
	entry, _ := refdata.TipoErroByCodigo(codigo)
	custo := ParseOrZero(entry.CustoBase)
	return model.ErroDetectado{
		TipoErro:      codigo,
		Campo:         campo,
		ValorOriginal: original,
		ValorEsperado: esperado,
		Explicacao:    entry.Descricao,
		Fonte:         entry.Categoria,
		CustoEstimado: custo,
		Severidade:    entry.Severidade,
	}
}

func priceErrors(erros []model.ErroDetectado) model.Custos {
	custos := model.Custos{Detalhamento: []model.CustoDetalhe{}}
	for _, e := range erros {
		entry, ok := refdata.TipoErroByCodigo(e.TipoErro)
		if !ok {
			continue
		}
		multa := ParseOrZero(entry.CustoBase)
		demurrage := float64(entry.DiasAtrasoMedio) * demurrageDailyRate
		custos.CustoMultas += multa
		custos.CustoDemurrage += demurrage
		if entry.DiasAtrasoMedio > custos.DiasAtrasoEstimado {
			custos.DiasAtrasoEstimado = entry.DiasAtrasoMedio
		}
		custos.Detalhamento = append(custos.Detalhamento, model.CustoDetalhe{
			Erro:           e.TipoErro,
			CustoMulta:     multa,
			CustoDemurrage: demurrage,
			DiasAtraso:     entry.DiasAtrasoMedio,
			Calculo:        fmt.Sprintf("multa base R$ %.2f + %d dia(s) x R$ %.2f de armazenagem", multa, entry.DiasAtrasoMedio, demurrageDailyRate),
		})
	}
	custos.CustoTotal = custos.CustoMultas + custos.CustoDemurrage
	return custos
}

func overallRisk(erros []model.ErroDetectado, validacoes []model.Validacao) string {
	risco := "BAIXO"
	for _, v := range validacoes {
		if v.Status == "ALERTA" && risco == "BAIXO" {
			risco = "MEDIO"
		}
	}
	for _, e := range erros {
		switch e.Severidade {
		case "CRITICA":
			return "CRITICO"
		case "ALTA":
			risco = "ALTO"
		default:
			if risco == "BAIXO" {
				risco = "MEDIO"
			}
		}
	}
	return risco
}
