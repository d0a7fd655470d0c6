// Package app runs the asset pipeline: compose each listing image, encode it
// into the output directory, then report what landed on disk.
package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/qarbonquery/storegen/internal/assets"
	"github.com/qarbonquery/storegen/internal/render"
)

type App struct {
	OutDir    string
	FontPaths []string
	QRURL     string
	Logger    Logger
}

func New(outDir string) *App {
	return &App{OutDir: outDir, FontPaths: render.DefaultFontPaths, Logger: NoopLogger{}}
}

// Run generates every asset in order and writes the size report. The first
// failure aborts the pipeline; there are no retries. The output directory
// must already exist.
func (a *App) Run() error {
	fonts := render.ResolveFont(a.FontPaths)
	if fonts.Path() == "" {
		a.Logger.Errorf("fonts", "no font path resolved, using built-in fallback")
	} else {
		a.Logger.Infof("fonts", "resolved %s", fonts.Path())
	}

	fmt.Println("Creating web store assets...")

	fmt.Println("Creating large tile (440x280)...")
	tile := assets.LargeTile(fonts)
	if err := a.savePNG(assets.TileFile, tile.Image()); err != nil {
		return err
	}

	fmt.Println("Creating marquee banner (1400x560)...")
	banner := assets.MarqueeBanner(fonts)
	if err := a.savePNG(assets.BannerFile, banner.Image()); err != nil {
		return err
	}

	fmt.Println("Creating screenshot mockup (1280x800)...")
	screenshot := assets.ScreenshotMockup(fonts)
	if err := a.savePNG(assets.ScreenshotFile, screenshot.Image()); err != nil {
		return err
	}

	fmt.Println("Creating additional screenshot (640x400)...")
	small := render.Downscale(screenshot.Image(), assets.ScreenshotSmallWidth, assets.ScreenshotSmallHeight)
	if err := a.savePNG(assets.ScreenshotSmallFile, small); err != nil {
		return err
	}

	if a.QRURL != "" {
		fmt.Println("Creating install QR badge (256x256)...")
		badge, err := assets.InstallBadge(a.QRURL, assets.QRBadgeSize)
		if err != nil {
			return fmt.Errorf("qr badge: %w", err)
		}
		if err := a.savePNG(assets.QRBadgeFile, badge); err != nil {
			return err
		}
	}

	fmt.Println("All assets created successfully!")
	if err := a.ReportSizes(os.Stdout); err != nil {
		return err
	}
	fmt.Printf("\nAssets created in %s/\n", a.OutDir)
	return nil
}

func (a *App) savePNG(name string, img image.Image) error {
	path := filepath.Join(a.OutDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	a.Logger.Infof("save", "wrote %s", path)
	return nil
}
