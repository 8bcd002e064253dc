package stub

import (
	"sync"
	"time"

	domain "github.com/BruksfildServices01/agenda-client/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/timezone"
)

// ======================================================
// STORE EM MEMÓRIA
// ======================================================

// O stub não persiste nada: é um espelho pequeno da API real para
// desenvolvimento local e testes de integração do cliente.

type userRecord struct {
	ID           uint
	Nome         string
	Email        string
	PasswordHash string
	Foto         string
	RaioBusca    float64
	Aviso24h     int
	Aviso2h      int
}

type appointmentRecord struct {
	ID              uint
	UserID          uint
	EstablishmentID uint
	ServiceID       uint
	StaffID         uint // zero = qualquer profissional
	Data            string
	Inicio          string // HH:MM
	Status          int
	CreatedAt       time.Time
}

type store struct {
	mu sync.Mutex

	users   map[uint]*userRecord
	byEmail map[string]uint

	addresses map[uint][]models.Address

	categories     []models.Category
	establishments []models.Establishment

	appointments []*appointmentRecord

	nextUserID        uint
	nextAddressID     uint
	nextAppointmentID uint
}

// Grade fixa de atendimento do stub; a API real calcula por expediente.
var slotGrid = buildSlotGrid()

func buildSlotGrid() []string {
	var grid []string
	start, _ := time.Parse("15:04", "09:00")
	end, _ := time.Parse("15:04", "20:30")
	for cur := start; !cur.After(end); cur = cur.Add(30 * time.Minute) {
		grid = append(grid, cur.Format("15:04"))
	}
	return grid
}

const slotDuration = 30 * time.Minute

func newStore() *store {
	s := &store{
		users:             make(map[uint]*userRecord),
		byEmail:           make(map[string]uint),
		addresses:         make(map[uint][]models.Address),
		nextUserID:        1,
		nextAddressID:     1,
		nextAppointmentID: 1,
	}
	s.seed()
	return s
}

func (s *store) seed() {
	barbearia := models.Category{
		ID: 1, Nome: "Barbearia",
		CorProfundo: "#3d0b37", CorPastel: "#e1bee7", CorVivido: "#4a148c",
	}
	salao := models.Category{
		ID: 2, Nome: "Salão de Beleza",
		CorProfundo: "#0b2a3d", CorPastel: "#bbdefb", CorVivido: "#0d47a1",
	}
	s.categories = []models.Category{barbearia, salao}

	carlos := models.Staff{ID: 1, Nome: "Carlos Andrade", Telefone: "5511988887777", Especialidades: "Degradê, navalha"}
	rafa := models.Staff{ID: 2, Nome: "Rafaela Lima"}

	s.establishments = []models.Establishment{
		{
			ID: 1, Nome: "Barbearia Central",
			Logradouro: "Rua Augusta", Numero: "1200", Bairro: "Consolação",
			Cidade: "São Paulo", Estado: "SP", CEP: "01304001",
			Lat: "-23.5558", Long: "-46.6608",
			AvaliacaoMedia: ptr(4.7),
			Servicos: []models.Service{
				{
					ID: 1, Nome: "Corte Masculino", Preco: 45,
					TempoMedioDuracao:        "30 min",
					Categoria:                &barbearia,
					ColaboradoresCapacitados: []models.Staff{carlos, rafa},
				},
				{
					ID: 2, Nome: "Barba Completa", Preco: 35,
					TempoMedioDuracao:        "30 min",
					Categoria:                &barbearia,
					ColaboradoresCapacitados: []models.Staff{carlos},
				},
			},
		},
		{
			ID: 2, Nome: "Studio Bella",
			Logradouro: "Av. Paulista", Numero: "900", Bairro: "Bela Vista",
			Cidade: "São Paulo", Estado: "SP", CEP: "01310100",
			Lat: "-23.5653", Long: "-46.6527",
			AvaliacaoMedia: ptr(4.9),
			Servicos: []models.Service{
				{
					ID: 3, Nome: "Manicure", Preco: 60,
					TempoMedioDuracao: "45 min",
					Categoria:         &salao,
				},
			},
		},
	}
}

func ptr(v float64) *float64 { return &v }

// ------------------------------------------------------
// Consultas
// ------------------------------------------------------

func (s *store) findEstablishment(id uint) *models.Establishment {
	for i := range s.establishments {
		if s.establishments[i].ID == id {
			return &s.establishments[i]
		}
	}
	return nil
}

func (s *store) findService(est *models.Establishment, serviceID uint) *models.Service {
	for i := range est.Servicos {
		if est.Servicos[i].ID == serviceID {
			return &est.Servicos[i]
		}
	}
	return nil
}

func (s *store) findStaff(svc *models.Service, staffID uint) *models.Staff {
	for i := range svc.ColaboradoresCapacitados {
		if svc.ColaboradoresCapacitados[i].ID == staffID {
			return &svc.ColaboradoresCapacitados[i]
		}
	}
	return nil
}

// active informa se o registro ainda segura o horário: confirmado segura
// sempre; pendente só dentro da janela de confirmação — o stub expira o
// lock do lado do servidor, como o cliente assume que a API real faz.
func (r *appointmentRecord) active(now time.Time) bool {
	switch domain.Status(r.Status) {
	case domain.StatusConfirmed:
		return true
	case domain.StatusPending:
		return now.Sub(r.CreatedAt) < domain.PendingWindow
	}
	return false
}

// availableSlots devolve a grade do dia menos os horários segurados.
// Chamar com o mutex preso.
func (s *store) availableSlots(estID uint, date string, now time.Time) []string {
	taken := make(map[string]bool)
	for _, ap := range s.appointments {
		if ap.EstablishmentID == estID && ap.Data == date && ap.active(now) {
			taken[ap.Inicio] = true
		}
	}

	var free []string
	for _, slot := range slotGrid {
		if taken[slot] {
			continue
		}
		// Horário de hoje que já passou não é ofertado.
		if instant, err := timezone.ParseDateTime(date, slot); err == nil && instant.Before(now) {
			continue
		}
		free = append(free, slot)
	}
	return free
}
