package main

import (
	"os"

	"github.com/named-data/tlvnode/cmd"
)

func main() {
	if err := cmd.NewCmdTlvNode().Execute(); err != nil {
		os.Exit(2)
	}
}
