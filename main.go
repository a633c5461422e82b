package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"borica/cmd"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	app := &cmd.App{Version: version}
	if err := cmd.Execute(app); err != nil {
		os.Exit(1)
	}
}
