// Command storegen renders the QarbonQuery web store listing assets
// (promotional tile, marquee banner, screenshot mockups) as PNG files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qarbonquery/storegen/internal/app"
)

func main() {
	outDir := flag.String("out", "webstore-assets", "output directory for the generated PNG files (must exist)")
	debug := flag.Bool("debug", false, "enable debug logging to ./storegen-debug.log")
	qrURL := flag.String("qr-url", "", "also generate an install QR badge for this listing URL")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via STOREGEN_STDIO_LOG")
	flag.Parse()

	// Best-effort: route all stdout/stderr output (including panic stack
	// traces) to a file so failures in scripted runs stay diagnosable.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("STOREGEN_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./storegen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New(*outDir)
	a.Logger = logger
	a.QRURL = *qrURL

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "asset generation failed:", err)
		os.Exit(1)
	}
}
