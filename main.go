package main

import (
	_ "embed"

	"github.com/notin-app/notin-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
