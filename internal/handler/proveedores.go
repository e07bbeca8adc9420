package handler

import (
	"net/http"

	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedorHandler struct {
	svc service.ProveedorService
}

func NewProveedorHandler(svc service.ProveedorService) *ProveedorHandler {
	return &ProveedorHandler{svc: svc}
}

// Crear godoc
// @Summary  Registrar proveedor
// @Tags     proveedores
// @Accept   json
// @Produce  json
// @Param    proveedor  body      dto.CrearProveedorRequest  true  "Datos del proveedor"
// @Success  201        {object}  dto.ProveedorResponse
// @Failure  409        {object}  apierror.APIError
// @Router   /v1/proveedores [post]
func (h *ProveedorHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
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
// @Summary  Listar proveedores
// @Tags     proveedores
// @Produce  json
// @Success  200  {array}  dto.ProveedorResponse
// @Router   /v1/proveedores [get]
func (h *ProveedorHandler) Listar(c *gin.Context) {
	proveedores, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedores)
}
