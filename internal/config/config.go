// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Surface   SurfaceConfig   `yaml:"surface"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SurfaceConfig holds the parameters of the sampled height function.
type SurfaceConfig struct {
	Resolution   int     `yaml:"resolution"`
	DomainRadius float32 `yaml:"domain_radius"`
	HeightScale  float32 `yaml:"height_scale"`
	Frequency    float32 `yaml:"frequency"`
}

// AnimationConfig holds the rotation animation settings.
// SpinStep is the per-frame angle increment in radians; YawRate and
// PitchRate scale the shared angle into the two rotation axes.
type AnimationConfig struct {
	SpinStep  float32 `yaml:"spin_step"`
	YawRate   float32 `yaml:"yaw_rate"`
	PitchRate float32 `yaml:"pitch_rate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      900,
			Height:     700,
			Fullscreen: false,
			VSync:      true,
		},
		Surface: SurfaceConfig{
			Resolution:   128,
			DomainRadius: 6.0,
			HeightScale:  1.0,
			Frequency:    1.0,
		},
		Animation: AnimationConfig{
			SpinStep:  0.02,
			YawRate:   0.9,
			PitchRate: 0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
