package main

import (
	"log"
	"os"

	"github.com/mountainmajesty/stays/internal/app"
	"github.com/mountainmajesty/stays/internal/logger"
)

func main() {
	l := logger.New(log.Default())

	var exitCode int

	if err := app.Run(l); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	os.Exit(exitCode)
}
