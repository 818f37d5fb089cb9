// codepoints inspects the Unicode code points of text: their properties,
// case mappings, and UTF-8/UTF-16 offsets.
package main

import (
	"log/slog"
	"os"

	"github.com/scalecode-solutions/codepoints/cmd/codepoints/command"
)

func main() {
	root, _ := command.GetRootCommand()
	if err := root.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
