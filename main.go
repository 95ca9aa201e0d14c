package main

import (
	"os"

	"github.com/guilhermegouw/cadastro/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
