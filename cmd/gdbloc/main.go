package main

import (
	"os"

	"github.com/mmuman/binutils-gdb/cmd/gdbloc/cmds"
)

func main() {
	if err := cmds.New().Execute(); err != nil {
		os.Exit(1)
	}
}
