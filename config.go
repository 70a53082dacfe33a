package mandelsurf

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config gathers every knob of the animation. Defaults reproduce the classic
// 400×400, 60-frame, 50-iteration rotating surface over [-2,2]².
type Config struct {
	Width   int `env:"MANDELSURF_WIDTH" envDefault:"400"`
	Height  int `env:"MANDELSURF_HEIGHT" envDefault:"400"`
	Frames  int `env:"MANDELSURF_FRAMES" envDefault:"60"`
	MaxIter int `env:"MANDELSURF_MAX_ITER" envDefault:"50"`

	// Region names a predefined Plane; empty means the full [-2,2]² view.
	Region string `env:"MANDELSURF_REGION"`

	Elevation     float64       `env:"MANDELSURF_ELEVATION" envDefault:"30"`
	FrameInterval time.Duration `env:"MANDELSURF_FRAME_INTERVAL" envDefault:"50ms"`

	// Workers for the height-map compute pool; 0 means GOMAXPROCS.
	Workers int `env:"MANDELSURF_WORKERS"`
}

// ParseConfig loads the configuration from the environment, falling back to
// the defaults above, and validates it.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with. It is called
// before any computation so bad values fail fast.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("dimensions %dx%d: %w", c.Width, c.Height, ErrInvalidDimension)
	}
	if c.Frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIter)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval)
	}
	if _, err := LookupPlane(c.Region); err != nil {
		return err
	}
	return nil
}

// Plane resolves the configured region. Config must have been validated.
func (c Config) Plane() Plane {
	p, err := LookupPlane(c.Region)
	if err != nil {
		panic(err)
	}
	return p
}
