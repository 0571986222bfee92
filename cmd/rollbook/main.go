package main

import (
	"github.com/tenpinclub/rollbook/internal/cli"
)

func main() {
	cli.Execute()
}
