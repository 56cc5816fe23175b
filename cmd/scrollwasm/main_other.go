//go:build !(js && wasm)

package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Fatal().Msg("scrollwasm must be built with GOOS=js GOARCH=wasm")
}
