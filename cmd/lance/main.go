package main

import (
	"github.com/dsgibbons/lance/cmd/lance/cmd"
)

func main() {
	cmd.Execute()
}
