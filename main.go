package main

import (
	"github.com/custodia-labs/tubescribe-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
