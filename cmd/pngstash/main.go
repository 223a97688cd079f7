package main

import (
	"log"

	"github.com/pngstash/pngstash/cmd/pngstash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
