package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application settings. Content tuning (animations, camera
// limits) lives in the prefab yaml; this covers the process around it.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`

	Window WindowConfig `mapstructure:"window"`

	Prefabs PrefabConfig `mapstructure:"prefabs"`

	Character CharacterConfig `mapstructure:"character"`

	Camera CameraConfig `mapstructure:"camera"`

	HUD bool `mapstructure:"hud"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}

type PrefabConfig struct {
	// Dir overrides embedded prefabs with files on disk when they exist.
	Dir       string `mapstructure:"dir"`
	HotReload bool   `mapstructure:"hotReload"`
}

type CharacterConfig struct {
	// SideConvention names the side returned when the viewer is on the
	// negative side of the heading's right vector: "left" or "right".
	SideConvention string `mapstructure:"sideConvention"`
	// Mirror names the direction drawn by flipping another side's frames,
	// or "none".
	Mirror   string  `mapstructure:"mirror"`
	TurnRate float64 `mapstructure:"turnRate"`
}

type CameraConfig struct {
	LookBack float64 `mapstructure:"lookBack"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "billboard")
	v.SetDefault("window.tps", 60)

	v.SetDefault("prefabs.dir", "prefabs")
	v.SetDefault("prefabs.hotReload", false)

	v.SetDefault("character.sideConvention", "left")
	v.SetDefault("character.mirror", "right")
	v.SetDefault("character.turnRate", 10.0)

	v.SetDefault("camera.lookBack", 10.0)

	v.SetDefault("hud", true)
}

// Load reads defaults, then path (if non-empty), then BILLBOARD_* env vars.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("billboard")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var ErrInvalid = errors.New("config: invalid value")

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Character.TurnRate < 0:
		return fmt.Errorf("%w: character.turnRate %v", ErrInvalid, c.Character.TurnRate)
	case c.Camera.LookBack < 0:
		return fmt.Errorf("%w: camera.lookBack %v", ErrInvalid, c.Camera.LookBack)
	}
	return nil
}
