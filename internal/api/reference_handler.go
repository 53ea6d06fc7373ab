// File path: internal/api/reference_handler.go
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/truenorth-regtech/truenorth/internal/compliance"
	"github.com/truenorth-regtech/truenorth/internal/refdata"
)

func (s *Server) handleNCMLookup(w http.ResponseWriter, r *http.Request) {
	code := compliance.DigitsOnly(chi.URLParam(r, "code"))
	if !compliance.ValidNCMFormat(code) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("NCM deve ter exatamente 8 dígitos"))
		return
	}
	entry, ok := refdata.NCMByCode(code)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("NCM %s não encontrado na tabela de referência", code))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleNCMSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parâmetro q é obrigatório"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	} else if limit > 50 {
		limit = 50
	}
	results := refdata.SearchNCM(query, limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func (s *Server) handleAnuentes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"anuentes": refdata.Anuentes()})
}

func (s *Server) handleTiposErro(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"tiposErro": refdata.TiposErro()})
}
