package handler

import (
	"net/http"

	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/middleware"
	"github.com/chebellamachina/VC-LM/internal/service"

	"github.com/gin-gonic/gin"
)

type SolicitudHandler struct {
	svc service.SolicitudService
}

func NewSolicitudHandler(svc service.SolicitudService) *SolicitudHandler {
	return &SolicitudHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear solicitud de pago
// @Description  Registra una nueva solicitud en estado pendiente
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        solicitud  body      dto.CrearSolicitudRequest  true  "Datos de la solicitud"
// @Success      201        {object}  dto.SolicitudResponse
// @Failure      422        {object}  apierror.ValidationError
// @Router       /v1/solicitudes [post]
func (h *SolicitudHandler) Crear(c *gin.Context) {
	var req dto.CrearSolicitudRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary  Listar solicitudes
// @Tags     solicitudes
// @Produce  json
// @Param    estado  query    string  false  "Filtrar por estado"
// @Param    orden   query    string  false  "recientes (defecto) | antiguos | monto_desc | monto_asc"
// @Success  200     {array}  dto.SolicitudResponse
// @Router   /v1/solicitudes [get]
func (h *SolicitudHandler) Listar(c *gin.Context) {
	solicitudes, err := h.svc.Listar(c.Request.Context(), c.Query("estado"), c.Query("orden"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, solicitudes)
}

// Obtener godoc
// @Summary  Obtener solicitud
// @Tags     solicitudes
// @Produce  json
// @Param    id  path      int  true  "ID de la solicitud"
// @Success  200  {object}  dto.SolicitudResponse
// @Failure  404  {object}  apierror.APIError
// @Router   /v1/solicitudes/{id} [get]
func (h *SolicitudHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Aprobar godoc
// @Summary      Aprobar solicitud (CFO)
// @Description  pendiente → aprobado_cfo; el aprobador sale del token
// @Tags         solicitudes
// @Param        id  path  int  true  "ID de la solicitud"
// @Success      204
// @Failure      409  {object}  apierror.APIError
// @Router       /v1/solicitudes/{id}/aprobar [post]
func (h *SolicitudHandler) Aprobar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Aprobar(c.Request.Context(), id, claims.Usuario); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Rechazar godoc
// @Summary  Rechazar solicitud (CFO)
// @Tags     solicitudes
// @Accept   json
// @Param    id      path  int                           true   "ID de la solicitud"
// @Param    motivo  body  dto.RechazarSolicitudRequest  false  "Motivo del rechazo"
// @Success  204
// @Failure  409  {object}  apierror.APIError
// @Router   /v1/solicitudes/{id}/rechazar [post]
func (h *SolicitudHandler) Rechazar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	// The body is optional; a missing or empty one means no stated reason.
	var req dto.RechazarSolicitudRequest
	_ = c.ShouldBindJSON(&req)

	claims := middleware.GetClaims(c)
	if err := h.svc.Rechazar(c.Request.Context(), id, claims.Usuario, req.Motivo); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Procesar godoc
// @Summary  Marcar solicitud en proceso (Tesorería)
// @Tags     solicitudes
// @Param    id  path  int  true  "ID de la solicitud"
// @Success  204
// @Failure  409  {object}  apierror.APIError
// @Router   /v1/solicitudes/{id}/procesar [post]
func (h *SolicitudHandler) Procesar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.MarcarEnProceso(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Completar godoc
// @Summary  Completar pago (Tesorería)
// @Tags     solicitudes
// @Accept   json
// @Param    id           path  int                            true   "ID de la solicitud"
// @Param    comprobante  body  dto.CompletarSolicitudRequest  false  "Comprobante de pago"
// @Success  204
// @Failure  409  {object}  apierror.APIError
// @Router   /v1/solicitudes/{id}/completar [post]
func (h *SolicitudHandler) Completar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CompletarSolicitudRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.svc.Completar(c.Request.Context(), id, req.AdjuntoComprobante); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GuardarNotas godoc
// @Summary  Guardar notas administrativas
// @Tags     solicitudes
// @Accept   json
// @Param    id     path  int                      true  "ID de la solicitud"
// @Param    notas  body  dto.GuardarNotasRequest  true  "Notas (reemplazan las existentes)"
// @Success  204
// @Failure  404  {object}  apierror.APIError
// @Router   /v1/solicitudes/{id}/notas [put]
func (h *SolicitudHandler) GuardarNotas(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.GuardarNotasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.GuardarNotas(c.Request.Context(), id, req.Notas); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
