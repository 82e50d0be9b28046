package cards

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// sheetConfig mirrors the TOML card sheet consumed by the CLI.
type sheetConfig struct {
	Player playerConfig `toml:"player"`
}

type playerConfig struct {
	Name        string `toml:"name"`
	Position    string `toml:"position"`
	Team        string `toml:"team"`
	CardNumber  string `toml:"card_number"`
	SetName     string `toml:"set"`
	Year        string `toml:"year"`
	Bio         string `toml:"bio"`
	CustomStats string `toml:"custom_stats"`
	Photo       string `toml:"photo"`
	Emblem      string `toml:"emblem"`
	Style       string `toml:"style"`
}

// LoadSheet reads a TOML card sheet and returns the described Player.
// Image paths are resolved relative to the sheet file and loaded lazily at
// render time, so a bad path degrades the layer rather than failing here.
func LoadSheet(path string) (Player, error) {
	var cfg sheetConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Player{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	style, err := ParseStyle(cfg.Player.Style)
	if err != nil {
		return Player{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	base := filepath.Dir(path)
	p := Player{
		Name:        cfg.Player.Name,
		Position:    cfg.Player.Position,
		Team:        cfg.Player.Team,
		CardNumber:  cfg.Player.CardNumber,
		SetName:     cfg.Player.SetName,
		Year:        cfg.Player.Year,
		Bio:         cfg.Player.Bio,
		CustomStats: cfg.Player.CustomStats,
		Style:       style,
	}
	if cfg.Player.Photo != "" {
		p.Photo = ImageFile(resolvePath(base, cfg.Player.Photo))
	}
	if cfg.Player.Emblem != "" {
		p.Emblem = ImageFile(resolvePath(base, cfg.Player.Emblem))
	}

	if err := p.Validate(); err != nil {
		return Player{}, err
	}
	return p, nil
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
