package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Process runs the readability pipeline over pdfs/, writing per-paper text
// and the aggregate table into output/.
func Process() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	return sh.RunV(bin, "process", "--input", "pdfs", "--output", "output")
}

// Ingest loads the aggregate table from output/ into the search index under index/.
func Ingest() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	return sh.RunV(bin, "store", "ingest",
		"--db", filepath.Join("index", "paperstat.db"),
		"--table", filepath.Join("output", "paper_metadata.csv"))
}
