package configs

import "time"

// Banner tunes banner rendering.
type Banner struct {
	// RotationInterval is the time each slide stays visible in a rotation.
	RotationInterval time.Duration `env:"ROTATION_INTERVAL" envDefault:"10s"`
}
