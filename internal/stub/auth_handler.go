package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/validators"
)

// --------- Requests ---------

type registerRequest struct {
	Nome                 string `json:"nome"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.PasswordConfirmation != "" && req.PasswordConfirmation != req.Password {
		httperr.BadRequest(c, "password_mismatch", "As senhas não conferem.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro interno.")
		return
	}

	s.store.mu.Lock()
	if _, exists := s.store.byEmail[email]; exists {
		s.store.mu.Unlock()
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
		return
	}

	user := &userRecord{
		ID:           s.store.nextUserID,
		Nome:         req.Nome,
		Email:        email,
		PasswordHash: string(hashed),
		RaioBusca:    10,
	}
	s.store.nextUserID++
	s.store.users[user.ID] = user
	s.store.byEmail[email] = user.ID
	s.store.mu.Unlock()

	token, err := s.generateToken(user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.store.mu.Lock()
	id, ok := s.store.byEmail[email]
	var user *userRecord
	if ok {
		user = s.store.users[id]
	}
	s.store.mu.Unlock()

	if user == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// --------- JWT ---------

func (s *Server) generateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
