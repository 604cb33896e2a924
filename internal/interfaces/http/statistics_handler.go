package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ludoteca/ludoteca-api/internal/application/dto"
	"github.com/ludoteca/ludoteca-api/internal/application/statistics"
	"github.com/ludoteca/ludoteca-api/pkg/logger"
)

// StatisticsHandler maneja el tablero de estadísticas (protegido).
type StatisticsHandler struct {
	uc  *statistics.UseCase
	log *logger.Logger
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *statistics.UseCase, log *logger.Logger) *StatisticsHandler {
	return &StatisticsHandler{uc: uc, log: log}
}

// Get devuelve el tablero completo: resumen numérico y series de todos los
// gráficos. Si alguna fuente falla, el tablero degrada a {sin_datos: true}
// con HTTP 200: el panel muestra su estado vacío en vez de romperse.
// GET /api/estadisticas
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	est, err := h.uc.GetEstadisticas(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("estadísticas: fallo al cargar fuentes")
		return c.JSON(dto.EstadisticasDTO{SinDatos: true})
	}
	return c.JSON(est)
}
