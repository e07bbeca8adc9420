package handler

import (
	"errors"
	"net/http"

	"github.com/chebellamachina/VC-LM/internal/apierror"
	"github.com/chebellamachina/VC-LM/internal/dto"
	"github.com/chebellamachina/VC-LM/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida la contraseña compartida del equipo y emite un JWT con el rol del usuario elegido
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credenciales  body      dto.LoginRequest  true  "Usuario y contraseña"
// @Success      200           {object}  dto.LoginResponse
// @Failure      401           {object}  apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredenciales) {
			c.JSON(http.StatusUnauthorized, apierror.New("Usuario o contraseña incorrectos"))
			return
		}
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
