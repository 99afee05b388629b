package main

import (
	"github.com/villagehq/village/cmd/village/cmd"
)

func main() {
	cmd.Execute()
}
