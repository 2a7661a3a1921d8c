package main

import (
	"os"

	"github.com/mdtlens/mdtlens/internal/cli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("mdtlens failed")
		os.Exit(1)
	}
}
