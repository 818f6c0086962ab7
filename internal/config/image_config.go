package config

// ImageConfig defines configuration for the image similarity layer
type ImageConfig struct {
	MatchThreshold float64 `json:"match_threshold,omitempty" yaml:"match_threshold,omitempty" validate:"omitempty,gt=0,lte=1"`
	PixelTolerance int     `json:"pixel_tolerance,omitempty" yaml:"pixel_tolerance,omitempty" validate:"omitempty,gte=0,lte=255"`
}

// NewDefaultImageConfig creates default image configuration
func NewDefaultImageConfig() ImageConfig {
	return ImageConfig{
		MatchThreshold: DefaultImageMatchThreshold,
		PixelTolerance: DefaultPixelTolerance,
	}
}
