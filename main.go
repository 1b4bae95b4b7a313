package main

import (
	"os"

	"github.com/purpose168/powermessage/internal/cmd"
	"github.com/purpose168/powermessage/internal/log"
)

func main() {
	defer log.RecoverPanic("main", "", func() { os.Exit(1) })
	cmd.Execute()
}
