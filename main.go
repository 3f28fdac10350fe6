// main is the entry point for the designlens CLI.
package main

import (
	"github.com/designlens/designlens/cmd"
	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/internal/corpusstore"
)

func main() {
	cmd.SetStoreManager(corpusstore.Manager)

	err := cmd.Execute()
	corpusstore.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
