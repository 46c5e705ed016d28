// Package plugin defines the contract between the engine host and its
// processing nodes: the buffer-shape negotiation, the per-block
// process call, lifecycle hooks and the factory that instantiates
// plugins by id.
package plugin

import "github.com/justyntemme/audiocore/pkg/plugin/param"

// Context carries the engine-wide processing parameters a plugin needs
// for its start-up calculations. It is passed explicitly; plugins
// never reach for ambient engine state.
type Context struct {
	// SampleRate in Hz.
	SampleRate float64

	// BlockSize in frames per render block.
	BlockSize int
}

// Plugin is a stateful processing node invoked once per render block.
type Plugin interface {
	// Initialize runs the plugin's allocations and start-up
	// calculations. On failure the plugin is destroyed without a
	// Terminate call.
	Initialize() error

	// CoreChanged notifies the plugin of an engine-wide parameter
	// change such as a new sample rate.
	CoreChanged(ctx Context)

	// Params describes the plugin's parameters.
	Params() []param.Desc

	// IoChanged notifies the plugin that a buffer slot's connectivity
	// changed. Returning ErrInvalidArgument makes the host re-query
	// IoDescriptor for the correct shape.
	IoChanged(change IoChange) error

	// IoDescriptor declares the plugin's required buffer shape.
	IoDescriptor() IoDesc

	// Process runs one render block. In complex mode inputs and
	// outputs are separate; in inplace mode outputs carries all
	// buffers and inputs is empty. Error kinds and the host policies
	// they trigger are documented on the error values in this package.
	Process(inputs, outputs []IoBuffer) error

	// Terminate is called before destruction, but only if Initialize
	// succeeded.
	Terminate()
}

// Waitable is a plugin the engine may designate, at most one per
// engine instance, to pace render cycles. Wait blocks until the next
// cycle should start; offline backends return immediately to render as
// fast as possible.
type Waitable interface {
	Plugin

	Wait() error
}

// Base provides no-op lifecycle hooks so concrete plugins only
// implement what they use.
type Base struct{}

// Initialize implements Plugin with a no-op.
func (Base) Initialize() error { return nil }

// CoreChanged implements Plugin with a no-op.
func (Base) CoreChanged(Context) {}

// Params implements Plugin with an empty parameter list.
func (Base) Params() []param.Desc { return nil }

// IoChanged implements Plugin by accepting every change.
func (Base) IoChanged(IoChange) error { return nil }

// Terminate implements Plugin with a no-op.
func (Base) Terminate() {}

// Factory enumerates available plugins and instantiates them. Each
// CreatePlugin call returns an owned, independently constructed
// instance; instances never share mutable state.
type Factory interface {
	// Subfactories returns nested factories, if any.
	Subfactories() []Factory

	// Descriptor returns the factory's descriptor.
	Descriptor() FactoryDesc

	// Plugins lists descriptors of the plugins this factory creates.
	Plugins() []Desc

	// CreatePlugin instantiates the plugin with the given
	// factory-local id; an unknown id fails with ErrInvalidArgument.
	CreatePlugin(id int) (Plugin, error)
}
