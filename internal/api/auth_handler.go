// File path: internal/api/auth_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/truenorth-regtech/truenorth/internal/auth"
	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/sqlite"
)

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("corpo da requisição inválido"))
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("email inválido"))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("nome é obrigatório"))
		return
	}
	if req.Password != req.ConfirmPassword {
		writeError(w, http.StatusBadRequest, fmt.Errorf("as senhas não coincidem"))
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	user, err := s.store.CreateUser(r.Context(), req.Email, req.Name, hash)
	if errors.Is(err, sqlite.ErrEmailTaken) {
		writeError(w, http.StatusConflict, fmt.Errorf("email já cadastrado"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: user registered", "user", user.ID)
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("corpo da requisição inválido"))
		return
	}
	user, hash, err := s.store.CredentialsByEmail(r.Context(), req.Email)
	if errors.Is(err, sqlite.ErrNotFound) || (err == nil && !auth.CheckPassword(hash, req.Password)) {
		writeError(w, http.StatusUnauthorized, fmt.Errorf("email ou senha incorretos"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: user logged in", "user", user.ID)
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.UserByID(r.Context(), auth.UserID(r.Context()))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, fmt.Errorf("conta não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]model.User{"user": user})
}
