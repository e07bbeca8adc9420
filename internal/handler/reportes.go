package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chebellamachina/VC-LM/internal/service"

	"github.com/gin-gonic/gin"
)

type ReporteHandler struct {
	svc service.ReporteService
}

func NewReporteHandler(svc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

// Stats godoc
// @Summary  Totales por estado
// @Tags     reportes
// @Produce  json
// @Success  200  {object}  map[string]dto.EstadoStatResponse
// @Router   /v1/reportes/stats [get]
func (h *ReporteHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Calendario godoc
// @Summary      Calendario de pagos
// @Description  Pagos activos agrupados por día del mes pedido
// @Tags         reportes
// @Produce      json
// @Param        mes   query     int  false  "Mes 1-12 (defecto: actual)"
// @Param        anio  query     int  false  "Año (defecto: actual)"
// @Success      200   {object}  dto.CalendarioResponse
// @Failure      422   {object}  apierror.APIError
// @Router       /v1/reportes/calendario [get]
func (h *ReporteHandler) Calendario(c *gin.Context) {
	ahora := time.Now()
	mes := queryInt(c, "mes", int(ahora.Month()))
	anio := queryInt(c, "anio", ahora.Year())

	resp, err := h.svc.Calendario(c.Request.Context(), mes, anio)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Proximos godoc
// @Summary  Pagos próximos a vencer
// @Tags     reportes
// @Produce  json
// @Param    dias  query    int  false  "Ventana en días (defecto 7)"
// @Success  200   {array}  dto.ProximoPagoResponse
// @Router   /v1/reportes/proximos [get]
func (h *ReporteHandler) Proximos(c *gin.Context) {
	dias := queryInt(c, "dias", 7)
	resp, err := h.svc.Proximos(c.Request.Context(), dias, time.Now())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cashflow godoc
// @Summary      Proyección de cashflow
// @Description  Egresos activos agrupados en ventanas semanales o meses calendario
// @Tags         reportes
// @Produce      json
// @Param        unidad     query     string  false  "semana (defecto) | mes"
// @Param        horizonte  query     int     false  "Cantidad de buckets (defecto 8 semanas / 6 meses)"
// @Success      200        {object}  dto.ProyeccionCashflowResponse
// @Failure      422        {object}  apierror.APIError
// @Router       /v1/reportes/cashflow [get]
func (h *ReporteHandler) Cashflow(c *gin.Context) {
	unidad := c.DefaultQuery("unidad", service.UnidadSemana)
	horizonte := queryInt(c, "horizonte", 0)

	resp, err := h.svc.ProyeccionCashflow(c.Request.Context(), unidad, horizonte, time.Now())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CashflowAcumulado godoc
// @Summary  Cashflow acumulado
// @Tags     reportes
// @Produce  json
// @Success  200  {array}  dto.PagoAcumuladoResponse
// @Router   /v1/reportes/cashflow/acumulado [get]
func (h *ReporteHandler) CashflowAcumulado(c *gin.Context) {
	resp, err := h.svc.CashflowAcumulado(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func queryInt(c *gin.Context, nombre string, porDefecto int) int {
	raw := c.Query(nombre)
	if raw == "" {
		return porDefecto
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return porDefecto
	}
	return n
}
