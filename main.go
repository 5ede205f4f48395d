package main

import (
	"os"

	"github.com/cadizz/booking/internal/app"
	"github.com/cadizz/booking/internal/logger"
)

func main() {
	l := logger.New(os.Stderr)

	var exitCode int

	if err := app.Run(l); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	os.Exit(exitCode)
}
