package main

import (
	"github.com/openplay/courtqueue/internal/cli"
)

func main() {
	cli.Execute()
}
