package handler

import (
	"net/http"

	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	svc service.UsuarioService
}

func NewUsuarioHandler(svc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{svc: svc}
}

// Crear godoc
// @Summary  Registrar usuario
// @Tags     usuarios
// @Accept   json
// @Produce  json
// @Param    usuario  body      dto.CrearUsuarioRequest  true  "Datos del usuario"
// @Success  201      {object}  dto.UsuarioResponse
// @Failure  409      {object}  apierror.APIError
// @Router   /v1/usuarios [post]
func (h *UsuarioHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
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
// @Summary  Listar usuarios
// @Tags     usuarios
// @Produce  json
// @Param    equipo  query     string  false  "Filtrar por equipo (produccion | admin)"
// @Success  200     {array}   dto.UsuarioResponse
// @Router   /v1/usuarios [get]
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.svc.Listar(c.Request.Context(), c.Query("equipo"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// Eliminar godoc
// @Summary  Eliminar usuario
// @Tags     usuarios
// @Param    id  path  int  true  "ID del usuario"
// @Success  204
// @Failure  404  {object}  apierror.APIError
// @Router   /v1/usuarios/{id} [delete]
func (h *UsuarioHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
