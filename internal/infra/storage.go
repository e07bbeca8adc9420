package infra

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrAdjuntoNoEncontrado = errors.New("adjunto no encontrado")

// AlmacenAdjuntos persists uploaded files on local disk.
// Keys look like "mockup_20260825_153000_factura.pdf" and never contain
// path separators.
type AlmacenAdjuntos struct {
	raiz string
}

func NewAlmacenAdjuntos(raiz string) (*AlmacenAdjuntos, error) {
	if err := os.MkdirAll(raiz, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de adjuntos: %w", err)
	}
	return &AlmacenAdjuntos{raiz: raiz}, nil
}

// Guardar writes the content under a timestamped key and returns the key.
func (a *AlmacenAdjuntos) Guardar(prefijo, nombre string, contenido io.Reader) (string, error) {
	clave := fmt.Sprintf("%s_%s_%s", prefijo, time.Now().Format("20060102_150405"), sanitizar(nombre))

	f, err := os.Create(filepath.Join(a.raiz, clave))
	if err != nil {
		return "", fmt.Errorf("creando adjunto: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, contenido); err != nil {
		return "", fmt.Errorf("escribiendo adjunto: %w", err)
	}
	return clave, nil
}

// Abrir returns a reader for a stored key. Keys with path separators are
// rejected before touching the filesystem.
func (a *AlmacenAdjuntos) Abrir(clave string) (io.ReadCloser, error) {
	if clave == "" || strings.ContainsAny(clave, `/\`) || strings.Contains(clave, "..") {
		return nil, ErrAdjuntoNoEncontrado
	}
	f, err := os.Open(filepath.Join(a.raiz, clave))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAdjuntoNoEncontrado
		}
		return nil, fmt.Errorf("abriendo adjunto: %w", err)
	}
	return f, nil
}

func (a *AlmacenAdjuntos) Existe(clave string) bool {
	if clave == "" || strings.ContainsAny(clave, `/\`) || strings.Contains(clave, "..") {
		return false
	}
	_, err := os.Stat(filepath.Join(a.raiz, clave))
	return err == nil
}

func sanitizar(nombre string) string {
	nombre = filepath.Base(nombre)
	nombre = strings.ReplaceAll(nombre, " ", "_")
	return nombre
}
