package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/chebellamachina/VC-LM/internal/apierror"
	"github.com/chebellamachina/VC-LM/internal/infra"

	"github.com/gin-gonic/gin"
)

// 10 MB, matching the legacy form's upload cap.
const maxAdjuntoBytes = 10 << 20

var prefijosValidos = map[string]bool{
	"mockup":      true,
	"factura":     true,
	"comprobante": true,
}

type AdjuntoHandler struct {
	almacen *infra.AlmacenAdjuntos
}

func NewAdjuntoHandler(almacen *infra.AlmacenAdjuntos) *AdjuntoHandler {
	return &AdjuntoHandler{almacen: almacen}
}

// Subir godoc
// @Summary      Subir adjunto
// @Description  Recibe un archivo multipart y devuelve la clave para asociarlo a una solicitud
// @Tags         adjuntos
// @Accept       multipart/form-data
// @Produce      json
// @Param        tipo     formData  string  true  "mockup | factura | comprobante"
// @Param        archivo  formData  file    true  "Archivo"
// @Success      201      {object}  map[string]string
// @Failure      400      {object}  apierror.APIError
// @Router       /v1/adjuntos [post]
func (h *AdjuntoHandler) Subir(c *gin.Context) {
	tipo := c.PostForm("tipo")
	if !prefijosValidos[tipo] {
		c.JSON(http.StatusBadRequest, apierror.New("Tipo de adjunto inválido: debe ser mockup, factura o comprobante"))
		return
	}

	archivo, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo"))
		return
	}
	if archivo.Size > maxAdjuntoBytes {
		c.JSON(http.StatusBadRequest, apierror.New("El archivo supera el límite de 10 MB"))
		return
	}

	f, err := archivo.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer f.Close()

	clave, err := h.almacen.Guardar(tipo, archivo.Filename, f)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"clave": clave})
}

// Descargar godoc
// @Summary  Descargar adjunto
// @Tags     adjuntos
// @Param    clave  path  string  true  "Clave del adjunto"
// @Success  200
// @Failure  404  {object}  apierror.APIError
// @Router   /v1/adjuntos/{clave} [get]
func (h *AdjuntoHandler) Descargar(c *gin.Context) {
	clave := c.Param("clave")
	f, err := h.almacen.Abrir(clave)
	if err != nil {
		if errors.Is(err, infra.ErrAdjuntoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Adjunto no encontrado"))
			return
		}
		_ = c.Error(err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", "attachment; filename=\""+clave+"\"")
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, f)
}
