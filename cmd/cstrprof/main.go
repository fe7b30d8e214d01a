package main

import (
	"log"
	"os"

	"github.com/rawbytedev/fixedcstr/cmd/cstrprof/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cstrprof: ")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
