package corpusstore

import (
	"fmt"

	"github.com/designlens/designlens/schema"
)

// PrintCorpusStatus prints corpus status information.
func PrintCorpusStatus(status schema.CorpusStatus) {
	fmt.Printf("Corpus Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Current-Version Entries: %d\n", status.CurrentVersion)
		fmt.Printf("Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
}
