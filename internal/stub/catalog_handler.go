package stub

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/httpresp"
	"github.com/BruksfildServices01/agenda-client/internal/models"
)

type coordsRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (s *Server) ListCategories(c *gin.Context) {
	s.store.mu.Lock()
	categories := append([]models.Category(nil), s.store.categories...)
	s.store.mu.Unlock()

	httpresp.List(c, categories)
}

func (s *Server) ListEstablishments(c *gin.Context) {
	categoryID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_category", "Categoria inválida.")
		return
	}

	var req coordsRequest
	_ = c.ShouldBindJSON(&req)

	s.store.mu.Lock()
	var result []models.Establishment
	for _, est := range s.store.establishments {
		for _, svc := range est.Servicos {
			if svc.Categoria != nil && svc.Categoria.ID == categoryID {
				est := est
				est.Servicos = nil // lista não carrega os serviços
				if req.Latitude != nil && req.Longitude != nil {
					est.Distancia = distanceFrom(*req.Latitude, *req.Longitude, est)
				}
				result = append(result, est)
				break
			}
		}
	}
	s.store.mu.Unlock()

	httpresp.List(c, result)
}

func (s *Server) GetEstablishment(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_establishment", "Estabelecimento inválido.")
		return
	}

	var req coordsRequest
	_ = c.ShouldBindJSON(&req)

	s.store.mu.Lock()
	est := s.store.findEstablishment(id)
	var detail models.Establishment
	if est != nil {
		detail = *est
		if req.Latitude != nil && req.Longitude != nil {
			detail.Distancia = distanceFrom(*req.Latitude, *req.Longitude, detail)
		}
	}
	s.store.mu.Unlock()

	if est == nil {
		httperr.NotFound(c, "establishment_not_found", "Estabelecimento não encontrado.")
		return
	}

	httpresp.OK(c, detail)
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

// distanceFrom aproxima a distância em km por equiretangular — precisão de
// brinquedo, suficiente para o stub ordenar por proximidade.
func distanceFrom(lat, long float64, est models.Establishment) *float64 {
	estLat, err1 := strconv.ParseFloat(est.Lat, 64)
	estLong, err2 := strconv.ParseFloat(est.Long, 64)
	if err1 != nil || err2 != nil {
		return nil
	}

	const kmPerDegree = 111.32
	dLat := (estLat - lat) * kmPerDegree
	dLong := (estLong - long) * kmPerDegree * math.Cos(lat*math.Pi/180)
	d := math.Round(math.Hypot(dLat, dLong)*10) / 10
	return &d
}
