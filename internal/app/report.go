package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportSizes lists every .png in the output directory with its byte size.
func (a *App) ReportSizes(w io.Writer) error {
	entries, err := os.ReadDir(a.OutDir)
	if err != nil {
		return err
	}

	// message.Printer groups digits (1,234,567) like the listings humans read.
	printer := message.NewPrinter(language.English)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "File sizes:")
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		size := info.Size()
		printer.Fprintf(w, "  %s: %d bytes (%.2f MB)\n", entry.Name(), size, float64(size)/1024/1024)
	}
	return nil
}
