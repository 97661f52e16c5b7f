package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"
)

const (
	SpriteTileSize    = 16
	SpriteScaleFactor = 3.0
	WindowWidth       = 1200
	WindowHeight      = 700

	WorldW = 3000.0
	WorldH = 2500.0

	PlayerSpeed  = 200.0
	PlayerHealth = 100.0

	GunFireInterval = 0.125
	GunOffset       = 50.0

	BulletSpeed    = 800.0
	BulletLifetime = 5.0
	BulletDamage   = 55.0

	EnemySpeed         = 100.0
	EnemyHealth        = 100.0
	EnemyDamage        = 1.0
	EnemySpawnInterval = 1.0
	EnemySpawnBatch    = 10
	MaxEnemyCount      = 200

	AnimationInterval   = 0.125
	NumWorldDecorations = 1000

	ContactRadius   = 24.0
	HitRadius       = 24.0
	ContactCooldown = 0.5

	MinCameraZoom = 1.0
	MaxCameraZoom = 6.0

	FPSWindow = 60
)

var BackgroundColor = color.RGBA{R: 197, G: 204, B: 184, A: 255}

// Config carries every tunable of a game instance. DefaultConfig returns the
// compiled-in constants; frontends override a handful of fields from flags.
type Config struct {
	WorldW float64
	WorldH float64

	PlayerSpeed  float64
	PlayerHealth float64

	GunFireInterval float64
	GunOffset       float64

	BulletSpeed    float64
	BulletLifetime float64
	BulletDamage   float64

	EnemySpeed         float64
	EnemyHealth        float64
	EnemyDamage        float64
	EnemySpawnInterval float64
	EnemySpawnBatch    int
	MaxEnemyCount      int

	AnimationInterval float64
	NumDecorations    int

	// DetectContacts enables the built-in overlap detector. When false,
	// contacts are only produced through World.ReportContact.
	DetectContacts  bool
	ContactRadius   float64
	HitRadius       float64
	ContactCooldown float64

	// CameraSmoothing is the lerp factor applied each frame; 1 snaps.
	CameraSmoothing float64
	MinZoom         float64
	MaxZoom         float64

	FPSWindow int

	Rand   *rand.Rand
	Logger *slog.Logger
}

// DefaultConfig returns the compiled-in configuration with a time-seeded RNG.
func DefaultConfig() Config {
	seed := uint64(time.Now().UnixNano())
	return Config{
		WorldW:             WorldW,
		WorldH:             WorldH,
		PlayerSpeed:        PlayerSpeed,
		PlayerHealth:       PlayerHealth,
		GunFireInterval:    GunFireInterval,
		GunOffset:          GunOffset,
		BulletSpeed:        BulletSpeed,
		BulletLifetime:     BulletLifetime,
		BulletDamage:       BulletDamage,
		EnemySpeed:         EnemySpeed,
		EnemyHealth:        EnemyHealth,
		EnemyDamage:        EnemyDamage,
		EnemySpawnInterval: EnemySpawnInterval,
		EnemySpawnBatch:    EnemySpawnBatch,
		MaxEnemyCount:      MaxEnemyCount,
		AnimationInterval:  AnimationInterval,
		NumDecorations:     NumWorldDecorations,
		DetectContacts:     true,
		ContactRadius:      ContactRadius,
		HitRadius:          HitRadius,
		ContactCooldown:    ContactCooldown,
		CameraSmoothing:    1.0,
		MinZoom:            MinCameraZoom,
		MaxZoom:            MaxCameraZoom,
		FPSWindow:          FPSWindow,
		Rand:               NewRand(seed),
		Logger:             slog.Default(),
	}
}

// NewRand returns a PCG-backed generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoInput       = errors.New("no input source")
)

// Validate reports the first field that cannot produce a playable game.
func (c *Config) Validate() error {
	switch {
	case c.WorldW <= 0 || c.WorldH <= 0:
		return fmt.Errorf("%w: world bounds %gx%g", ErrInvalidConfig, c.WorldW, c.WorldH)
	case c.MaxEnemyCount < 0:
		return fmt.Errorf("%w: enemy cap %d", ErrInvalidConfig, c.MaxEnemyCount)
	case c.EnemySpawnBatch <= 0:
		return fmt.Errorf("%w: spawn batch %d", ErrInvalidConfig, c.EnemySpawnBatch)
	case c.CameraSmoothing <= 0 || c.CameraSmoothing > 1:
		return fmt.Errorf("%w: camera smoothing %g outside (0, 1]", ErrInvalidConfig, c.CameraSmoothing)
	case c.MinZoom <= 0 || c.MinZoom > c.MaxZoom:
		return fmt.Errorf("%w: zoom range [%g, %g]", ErrInvalidConfig, c.MinZoom, c.MaxZoom)
	case c.NumDecorations < 0:
		return fmt.Errorf("%w: decorations %d", ErrInvalidConfig, c.NumDecorations)
	}
	return nil
}
