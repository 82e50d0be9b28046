package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/youruser/cardforge/internal/cardgen"
	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/render"
	"github.com/youruser/cardforge/internal/util"
)

var (
	sheetPath  string
	outDir     string
	styleNames []string
	textureDir string
	timeout    time.Duration
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cardgen",
		Short: "Render trading card images from a TOML card sheet",
		Long: `cardgen reads a TOML card sheet describing a player (name, team,
photo and emblem paths, style) and renders the card front, back and
stats block to an output directory. Pass --styles to render several
style variations of the same card concurrently.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&sheetPath, "sheet", "s", "card.toml", "path to the TOML card sheet")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory")
	rootCmd.Flags().StringSliceVar(&styleNames, "styles", nil, "styles to render (default: the sheet's style)")
	rootCmd.Flags().StringVar(&textureDir, "textures", "", "directory with <style>.png texture assets")
	rootCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall render deadline")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each render layer")

	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	player, err := cards.LoadSheet(sheetPath)
	if err != nil {
		return err
	}

	var rOpts []render.Option
	if textureDir != "" {
		rOpts = append(rOpts, render.WithTextures(render.DirTextures(os.DirFS(textureDir))))
	}
	if verbose {
		rOpts = append(rOpts, render.WithObserver(func(face, layer string) {
			log.Printf("render %s: %s", face, layer)
		}))
	}
	renderer, err := render.New(rOpts...)
	if err != nil {
		return err
	}

	styles, err := resolveStyles(player)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	variations, err := cardgen.GenerateVariations(ctx, player, styles,
		cardgen.WithRenderer(renderer))
	if err != nil {
		return err
	}

	failed := 0
	for _, v := range variations {
		if v.Err != nil {
			failed++
			color.Red("✗ %s: %v", v.Style, v.Err)
			continue
		}
		dir := filepath.Join(outDir, string(v.Style))
		if err := writeVariation(dir, v.Result); err != nil {
			failed++
			color.Red("✗ %s: %v", v.Style, err)
			continue
		}
		color.Green("✔ %s -> %s", v.Style, dir)
	}
	if failed == len(variations) {
		return fmt.Errorf("all %d variation(s) failed", failed)
	}
	return nil
}

func resolveStyles(p cards.Player) ([]cards.Style, error) {
	if len(styleNames) == 0 {
		return []cards.Style{p.EffectiveStyle()}, nil
	}
	out := make([]cards.Style, 0, len(styleNames))
	for _, name := range styleNames {
		s, err := cards.ParseStyle(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func writeVariation(dir string, res *cards.Result) error {
	if err := util.WriteFile(filepath.Join(dir, "front.png"), res.FrontPNG); err != nil {
		return err
	}
	if err := util.WriteFile(filepath.Join(dir, "back.png"), res.BackPNG); err != nil {
		return err
	}
	return util.WriteFile(filepath.Join(dir, "stats.txt"), []byte(res.StatsText))
}
