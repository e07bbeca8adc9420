package main

// seedusers loads the initial team roster when the usuarios table is empty.
// Safe to run more than once.

import (
	"github.com/chebellamachina/VC-LM/internal/config"
	"github.com/chebellamachina/VC-LM/internal/infra"
	"github.com/chebellamachina/VC-LM/internal/model"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargando configuración")
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializando base de datos")
	}

	var cuenta int64
	if err := db.Model(&model.Usuario{}).Count(&cuenta).Error; err != nil {
		log.Fatal().Err(err).Msg("contando usuarios")
	}
	if cuenta > 0 {
		log.Info().Int64("usuarios", cuenta).Msg("la tabla ya tiene usuarios, no se siembra nada")
		return
	}

	iniciales := []model.Usuario{
		{Nombre: "Ana", Equipo: "produccion"},
		{Nombre: "Bruno", Equipo: "produccion"},
		{Nombre: "Carla", Equipo: "produccion"},
		{Nombre: "CFO", Equipo: "admin"},
	}
	if err := db.Create(&iniciales).Error; err != nil {
		log.Fatal().Err(err).Msg("sembrando usuarios")
	}
	log.Info().Int("usuarios", len(iniciales)).Msg("roster inicial cargado")
}
