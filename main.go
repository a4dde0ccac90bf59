// main.go
//
// Minimal entry point that delegates CLI handling to the Cobra root command in cmd/root.go

package main

import (
	"github.com/Migue0802/SG2-Team2/cmd"
)

func main() {
	cmd.Execute()
}
