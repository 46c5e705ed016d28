package engine

import "fmt"

// Config is the engine-wide processing configuration, consumed at
// engine and pool construction time.
type Config struct {
	// SampleRate in Hz.
	SampleRate int

	// BlockSize in frames per render block.
	BlockSize int

	// PoolPrealloc is how many buffers each pool constructs eagerly,
	// so the render path never hits the acquire-miss fallback.
	PoolPrealloc int

	// FaultBudget is how many internal plugin errors the graph driver
	// tolerates before tearing a node down. The engine only carries
	// the policy value; applying it is the driver's business.
	FaultBudget int
}

// DefaultConfig returns a workable desktop configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:   48000,
		BlockSize:    512,
		PoolPrealloc: 32,
		FaultBudget:  8,
	}
}

// Validate reports configuration values the engine cannot run with.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("engine: sample rate must be positive, got %d", c.SampleRate)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("engine: block size must be positive, got %d", c.BlockSize)
	}
	if c.PoolPrealloc < 0 {
		return fmt.Errorf("engine: pool preallocation must not be negative, got %d", c.PoolPrealloc)
	}
	if c.FaultBudget < 0 {
		return fmt.Errorf("engine: fault budget must not be negative, got %d", c.FaultBudget)
	}
	return nil
}
