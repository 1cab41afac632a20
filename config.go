package glyphatlas

// Config holds builder configuration.
type Config struct {
	// AvailableWidth is the atlas width in pixels. Default: 1024
	AvailableWidth uint32

	// ShelfHeight is the base shelf height in pixels. Shelves grow in
	// multiples of it, and the region's vertical capacity is
	// ShelfColumns * ShelfHeight. Default: 32
	ShelfHeight uint32

	// Packer, when non-nil, replaces the default ShelfPacker. When set,
	// AvailableWidth and ShelfHeight are ignored.
	Packer Packer
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		AvailableWidth: 1024,
		ShelfHeight:    32,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Packer != nil {
		return nil
	}
	if c.AvailableWidth == 0 {
		return &ConfigError{Field: "AvailableWidth", Reason: "must be positive"}
	}
	if c.ShelfHeight == 0 {
		return &ConfigError{Field: "ShelfHeight", Reason: "must be positive"}
	}
	if c.ShelfHeight > c.AvailableWidth {
		return &ConfigError{Field: "ShelfHeight", Reason: "must be at most AvailableWidth"}
	}
	return nil
}

// packer returns the configured packer, building the default shelf packer
// when none was supplied. Validate must have passed.
func (c *Config) packer() Packer {
	if c.Packer != nil {
		return c.Packer
	}
	return NewShelfPacker(c.AvailableWidth, c.ShelfHeight)
}
