// Package config handles renderer configuration loading and defaults.
package config

// Config holds all renderer settings.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sphere    SphereConfig    `yaml:"sphere"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ScreenConfig holds canvas geometry and projection settings.
type ScreenConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Distance float64 `yaml:"distance"` // projection plane distance from the viewer
	ZOffset  float64 `yaml:"z_offset"` // camera offset keeping the sphere in front of the viewer
}

// SphereConfig holds the sampled geometry settings.
type SphereConfig struct {
	Radius float64 `yaml:"radius"`
	Step   float64 `yaml:"step"`
}

// AnimationConfig holds the per-frame angle increments in radians.
type AnimationConfig struct {
	PitchDelta float64 `yaml:"pitch_delta"`
	YawDelta   float64 `yaml:"yaw_delta"`
	RollDelta  float64 `yaml:"roll_delta"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock render contract: a 150×50 canvas,
// projection distance 35, camera offset 20, radius-10 sphere, and the
// standard tumble rates.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:    150,
			Height:   50,
			Distance: 35,
			ZOffset:  20,
		},
		Sphere: SphereConfig{
			Radius: 10,
			Step:   0.025,
		},
		Animation: AnimationConfig{
			PitchDelta: 0.005,
			YawDelta:   0.005,
			RollDelta:  0.001,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
