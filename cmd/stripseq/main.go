package main

import (
	"os"

	"github.com/stripseq/stripseq/cmd/stripseq/commands"

	_ "github.com/stripseq/stripseq/extract/tesseract" // install default OCR engine
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
