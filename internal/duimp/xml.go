// File path: internal/duimp/xml.go
package duimp

import (
	"encoding/xml"
	"fmt"
)

// declaracaoXML is the Siscomex envelope around the export record.
type declaracaoXML struct {
	XMLName          xml.Name   `xml:"duimp"`
	Versao           string     `xml:"versao,attr"`
	NumeroReferencia string     `xml:"identificacao>numeroReferencia"`
	TipoDeclaracao   string     `xml:"identificacao>tipoDeclaracao"`
	CodigoURF        string     `xml:"identificacao>codigoURF"`
	DataEmbarque     string     `xml:"carga>dataEmbarque"`
	ViaTransporte    string     `xml:"carga>viaTransporte"`
	Incoterm         string     `xml:"condicaoVenda>incoterm"`
	Moeda            string     `xml:"condicaoVenda>moeda"`
	Importador       Importador `xml:"intervenientes>importador"`
	Exportador       Exportador `xml:"intervenientes>exportador"`
	Itens            []Item     `xml:"itens>item"`
	Totais           Totais     `xml:"totais"`
}

const xmlVersion = "1.0"

// RenderXML serialises the validated record into the declaration XML.
// Callers must have run Validate first; rendering an invalid record is a
// programming error, not a user error, so it is not re-checked here.
func RenderXML(data ExportData) ([]byte, error) {
	doc := declaracaoXML{
		Versao:           xmlVersion,
		NumeroReferencia: data.NumeroReferencia,
		TipoDeclaracao:   data.TipoDeclaracao,
		CodigoURF:        data.CodigoURF,
		DataEmbarque:     data.DataEmbarque,
		ViaTransporte:    data.ViaTransporte,
		Incoterm:         data.Incoterm,
		Moeda:            data.Moeda,
		Importador:       data.Importador,
		Exportador:       data.Exportador,
		Itens:            data.Itens,
		Totais:           data.Totais,
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal duimp xml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Filename is the download name for an operation's declaration XML.
func Filename(operationID string) string {
	return fmt.Sprintf("duimp_%s.xml", operationID)
}
