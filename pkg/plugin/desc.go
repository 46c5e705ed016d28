package plugin

// Desc describes a plugin as returned by its factory.
type Desc struct {
	// ID is the plugin's id, local to its factory.
	ID int

	// UUID identifies the plugin globally.
	UUID string

	// Name is the plugin's display name.
	Name string

	// Category places the plugin in a dot-separated hierarchy, e.g.
	// "Generator.Synth".
	Category string

	// Description is a short free-form description.
	Description string

	// URL points at more information about the plugin.
	URL string

	// Developer names the plugin's developer.
	Developer string

	// Version is the plugin's version string.
	Version string

	// License names the plugin's license.
	License string

	// Extra holds additional custom properties, if any.
	Extra map[string]string
}

// DefaultDesc returns a descriptor with neutral defaults; builders
// chain the WithX setters on top of it.
func DefaultDesc() Desc {
	return Desc{
		Name:      "[unknown]",
		Category:  "General",
		Developer: "audiocore developers",
		Version:   "0.1",
		License:   "MIT",
	}
}

// WithID sets the factory-local id.
func (d Desc) WithID(id int) Desc { d.ID = id; return d }

// WithUUID sets the global identity.
func (d Desc) WithUUID(uuid string) Desc { d.UUID = uuid; return d }

// WithName sets the display name.
func (d Desc) WithName(name string) Desc { d.Name = name; return d }

// WithCategory sets the dot-separated category.
func (d Desc) WithCategory(category string) Desc { d.Category = category; return d }

// WithDescription sets the description.
func (d Desc) WithDescription(description string) Desc { d.Description = description; return d }

// WithURL sets the information URL.
func (d Desc) WithURL(url string) Desc { d.URL = url; return d }

// WithDeveloper sets the developer name.
func (d Desc) WithDeveloper(developer string) Desc { d.Developer = developer; return d }

// WithVersion sets the version string.
func (d Desc) WithVersion(version string) Desc { d.Version = version; return d }

// WithLicense sets the license name.
func (d Desc) WithLicense(license string) Desc { d.License = license; return d }

// WithExtra adds one custom key/value property.
func (d Desc) WithExtra(key, value string) Desc {
	extra := make(map[string]string, len(d.Extra)+1)
	for k, v := range d.Extra {
		extra[k] = v
	}
	extra[key] = value
	d.Extra = extra
	return d
}

// FactoryDesc describes a factory.
type FactoryDesc struct {
	// UUID identifies the factory globally.
	UUID string

	// Name is the factory's display name.
	Name string

	// Description is a short free-form description.
	Description string
}
