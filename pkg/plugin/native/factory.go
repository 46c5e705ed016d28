package native

import "github.com/justyntemme/audiocore/pkg/plugin"

// FactoryUUID is the native factory's global identity.
const FactoryUUID = "7a3de1c8-0f64-4b2a-8c91-5be20d74a6f2"

// GeneratorDesc returns the function generator's descriptor under the
// given factory-local id.
func GeneratorDesc(id int) plugin.Desc {
	return plugin.DefaultDesc().
		WithID(id).
		WithUUID(GeneratorUUID).
		WithName("Function Generator").
		WithCategory("Generator.Synth").
		WithDescription("generates multiple sine waves from note events.")
}

// Factory creates the plugins that ship with the engine. Every
// CreatePlugin call returns a fresh, independent instance.
type Factory struct {
	ctx plugin.Context
}

// NewFactory creates a native factory bound to the engine context its
// plugins are constructed with.
func NewFactory(ctx plugin.Context) *Factory {
	return &Factory{ctx: ctx}
}

// Subfactories implements plugin.Factory; the native factory has none.
func (f *Factory) Subfactories() []plugin.Factory { return nil }

// Descriptor implements plugin.Factory.
func (f *Factory) Descriptor() plugin.FactoryDesc {
	return plugin.FactoryDesc{
		UUID:        FactoryUUID,
		Name:        "Native Factory",
		Description: "entry of native plugins.",
	}
}

// Plugins implements plugin.Factory.
func (f *Factory) Plugins() []plugin.Desc {
	return []plugin.Desc{GeneratorDesc(0)}
}

// CreatePlugin implements plugin.Factory.
func (f *Factory) CreatePlugin(id int) (plugin.Plugin, error) {
	switch id {
	case 0:
		return NewFunctionGenerator(f.ctx), nil
	default:
		return nil, plugin.ErrInvalidArgument
	}
}
