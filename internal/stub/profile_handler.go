package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/httpresp"
	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// ======================================================
// PERFIL E ENDEREÇOS
// ======================================================

func (s *Server) GetUser(c *gin.Context) {
	userID := s.userID(c)

	s.store.mu.Lock()
	record := s.store.users[userID]
	var user models.User
	if record != nil {
		user = models.User{
			ID:        record.ID,
			Name:      record.Nome,
			Email:     record.Email,
			Foto:      record.Foto,
			RaioBusca: record.RaioBusca,
			Aviso24h:  models.Flag(record.Aviso24h == 1),
			Aviso2h:   models.Flag(record.Aviso2h == 1),
			Enderecos: append([]models.Address(nil), s.store.addresses[userID]...),
		}
	}
	s.store.mu.Unlock()

	if record == nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, user)
}

// --------- Endereços ---------

type addressRequest struct {
	Nome        string `json:"nome"`
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro" binding:"required"`
	Numero      string `json:"numero" binding:"required"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

func (r addressRequest) model(id uint) models.Address {
	return models.Address{
		ID:          id,
		Nome:        r.Nome,
		CEP:         r.CEP,
		Logradouro:  r.Logradouro,
		Numero:      r.Numero,
		Complemento: r.Complemento,
		Bairro:      r.Bairro,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
	}
}

func (s *Server) ListAddresses(c *gin.Context) {
	userID := s.userID(c)

	s.store.mu.Lock()
	addresses := append([]models.Address(nil), s.store.addresses[userID]...)
	s.store.mu.Unlock()

	httpresp.List(c, addresses)
}

func (s *Server) CreateAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	userID := s.userID(c)

	s.store.mu.Lock()
	address := req.model(s.store.nextAddressID)
	s.store.nextAddressID++
	s.store.addresses[userID] = append(s.store.addresses[userID], address)
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, address)
}

func (s *Server) UpdateAddress(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_address", "Endereço inválido.")
		return
	}
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	userID := s.userID(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	list := s.store.addresses[userID]
	for i := range list {
		if list[i].ID == id {
			list[i] = req.model(id)
			httpresp.OK(c, list[i])
			return
		}
	}
	httperr.NotFound(c, "address_not_found", "Endereço não encontrado.")
}

func (s *Server) DeleteAddress(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_address", "Endereço inválido.")
		return
	}
	userID := s.userID(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	list := s.store.addresses[userID]
	for i := range list {
		if list[i].ID == id {
			s.store.addresses[userID] = append(list[:i], list[i+1:]...)
			httpresp.OK(c, gin.H{"message": "Endereço removido."})
			return
		}
	}
	httperr.NotFound(c, "address_not_found", "Endereço não encontrado.")
}

// --------- Preferências ---------

func (s *Server) UpdateSearchRadius(c *gin.Context) {
	var req struct {
		RaioBusca float64 `json:"raio_busca" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RaioBusca <= 0 {
		httperr.BadRequest(c, "invalid_radius", "Raio de busca inválido.")
		return
	}

	userID := s.userID(c)
	s.store.mu.Lock()
	if user := s.store.users[userID]; user != nil {
		user.RaioBusca = req.RaioBusca
	}
	s.store.mu.Unlock()

	httpresp.OK(c, gin.H{"raio_busca": req.RaioBusca})
}

func (s *Server) SetReminder24h(c *gin.Context) {
	s.setReminder(c, "aviso_24h", func(u *userRecord, v int) { u.Aviso24h = v })
}

func (s *Server) SetReminder2h(c *gin.Context) {
	s.setReminder(c, "aviso_2h", func(u *userRecord, v int) { u.Aviso2h = v })
}

func (s *Server) setReminder(c *gin.Context, field string, assign func(*userRecord, int)) {
	var body map[string]int
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	value, ok := body[field]
	if !ok || (value != 0 && value != 1) {
		httperr.BadRequest(c, "invalid_flag", "Valor inválido para "+field+".")
		return
	}

	userID := s.userID(c)
	s.store.mu.Lock()
	if user := s.store.users[userID]; user != nil {
		assign(user, value)
	}
	s.store.mu.Unlock()

	httpresp.OK(c, gin.H{field: value})
}

// EditProfile recebe o multipart do app: nome, _method=PUT e avatar
// opcional. O stub não guarda o arquivo, só registra o nome.
func (s *Server) EditProfile(c *gin.Context) {
	if method := c.PostForm("_method"); method != "PUT" {
		httperr.BadRequest(c, "invalid_method", "Esperado _method=PUT.")
		return
	}
	nome := c.PostForm("nome")
	if nome == "" {
		httperr.BadRequest(c, "invalid_name", "Nome obrigatório.")
		return
	}

	userID := s.userID(c)
	s.store.mu.Lock()
	if user := s.store.users[userID]; user != nil {
		user.Nome = nome
		if file, err := c.FormFile("avatar"); err == nil {
			user.Foto = "/uploads/avatars/" + strconv.FormatUint(uint64(userID), 10) + "/" + file.Filename
		}
	}
	s.store.mu.Unlock()

	httpresp.OK(c, gin.H{"message": "Perfil atualizado."})
}
