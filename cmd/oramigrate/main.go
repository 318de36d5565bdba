package main

import (
	"os"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
