package main

import (
	"os"

	"github.com/inkwell-cms/inkwell/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
