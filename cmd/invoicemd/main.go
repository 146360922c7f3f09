// invoicemd is the command line converter: it turns OCR text files or PDFs
// into markdown, json, xml, or yaml invoice documents.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
