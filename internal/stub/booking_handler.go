package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-client/internal/audit"
	domain "github.com/BruksfildServices01/agenda-client/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/httpresp"
	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/timezone"
)

// ======================================================
// AGENDAMENTO
// ======================================================

type slotRequest struct {
	Data          string `json:"data" binding:"required"`
	ServicoID     uint   `json:"servico_id"`
	ColaboradorID *uint  `json:"colaborador_id"`
	Horario       string `json:"horario"`
}

// AvailableSlots devolve os horários livres do dia como array nu — a API
// real responde esse endpoint sem envelope.
func (s *Server) AvailableSlots(c *gin.Context) {
	estID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_establishment", "Estabelecimento inválido.")
		return
	}

	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if _, err := timezone.ParseDate(req.Data); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	now := timezone.Now()
	s.store.mu.Lock()
	slots := s.store.availableSlots(estID, req.Data, now)
	s.store.mu.Unlock()

	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, slots)
}

// LockSlot segura o horário para o usuário. Sucesso devolve 201 com o
// agendamento pendente; horário já tomado devolve 422 com a lista
// atualizada, para o cliente recuperar sem nova chamada.
func (s *Server) LockSlot(c *gin.Context) {
	estID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_establishment", "Estabelecimento inválido.")
		return
	}

	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Horario == "" {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	now := timezone.Now()
	userID := s.userID(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	est := s.store.findEstablishment(estID)
	if est == nil {
		httperr.NotFound(c, "establishment_not_found", "Estabelecimento não encontrado.")
		return
	}
	svc := s.store.findService(est, req.ServicoID)
	if svc == nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var staffID uint
	if req.ColaboradorID != nil {
		staffID = *req.ColaboradorID
		if s.store.findStaff(svc, staffID) == nil {
			httperr.BadRequest(c, "invalid_staff", "Profissional não atende este serviço.")
			return
		}
	}

	free := s.store.availableSlots(estID, req.Data, now)
	if !contains(free, req.Horario) {
		httperr.Conflict(c, "Este horário não está mais disponível.", free)
		return
	}

	record := &appointmentRecord{
		ID:              s.store.nextAppointmentID,
		UserID:          userID,
		EstablishmentID: estID,
		ServiceID:       req.ServicoID,
		StaffID:         staffID,
		Data:            req.Data,
		Inicio:          req.Horario,
		Status:          int(domain.StatusPending),
		CreatedAt:       now,
	}
	s.store.nextAppointmentID++
	s.store.appointments = append(s.store.appointments, record)

	s.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "lock",
		Entity:   "agendamento",
		EntityID: &record.ID,
		Metadata: gin.H{"data": req.Data, "horario": req.Horario},
	})

	c.JSON(http.StatusCreated, s.store.project(record))
}

// ListAppointments devolve os agendamentos do usuário, pendentes expirados
// inclusos — quem esconde é o cliente.
func (s *Server) ListAppointments(c *gin.Context) {
	userID := s.userID(c)

	s.store.mu.Lock()
	var result []models.Appointment
	for _, record := range s.store.appointments {
		if record.UserID == userID {
			result = append(result, s.store.project(record))
		}
	}
	s.store.mu.Unlock()

	httpresp.List(c, result)
}

func (s *Server) ConfirmAppointment(c *gin.Context) {
	s.transition(c, "confirm", domain.CanConfirm, domain.StatusConfirmed)
}

func (s *Server) CancelAppointment(c *gin.Context) {
	s.transition(c, "cancel", domain.CanCancel, domain.StatusCancelled)
}

func (s *Server) transition(c *gin.Context, action string, check func(domain.Status) error, next domain.Status) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment", "Agendamento inválido.")
		return
	}
	userID := s.userID(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var record *appointmentRecord
	for _, ap := range s.store.appointments {
		if ap.ID == uint(id) && ap.UserID == userID {
			record = ap
			break
		}
	}
	if record == nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	current := domain.Status(record.Status)
	if current == domain.StatusPending && !record.active(timezone.Now()) {
		httperr.Conflict(c, "Este horário não está mais disponível.", nil)
		return
	}
	if err := check(current); err != nil {
		httperr.BadRequest(c, "invalid_state", "Agendamento não permite esta operação.")
		return
	}
	record.Status = int(next)

	s.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "agendamento",
		EntityID: &record.ID,
	})

	httpresp.OK(c, s.store.project(record))
}

// project monta a resposta no formato da API real. Inicio e fim saem como
// HH:MM:SS, que é como o backend serializa colunas TIME.
func (s *store) project(record *appointmentRecord) models.Appointment {
	ap := models.Appointment{
		ID:        record.ID,
		Data:      record.Data,
		Inicio:    record.Inicio + ":00",
		Status:    record.Status,
		CreatedAt: record.CreatedAt,
	}

	if start, err := time.Parse("15:04", record.Inicio); err == nil {
		ap.Fim = start.Add(slotDuration).Format("15:04:05")
	}

	if est := s.findEstablishment(record.EstablishmentID); est != nil {
		detail := *est
		detail.Servicos = nil
		ap.Estabelecimento = detail

		if svc := s.findService(est, record.ServiceID); svc != nil {
			ap.Servico = *svc
			ap.Servico.ColaboradoresCapacitados = nil
			if record.StaffID != 0 {
				if staff := s.findStaff(svc, record.StaffID); staff != nil {
					picked := *staff
					ap.Colaborador = &picked
				}
			}
		}
	}

	return ap
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
