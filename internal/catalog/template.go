package catalog

// Template is an immutable palette entry from which canvas nodes are
// instantiated.
type Template struct {
	Type        string `toml:"type" json:"type" validate:"required,typetag,max=48"`
	Name        string `toml:"name" json:"name" validate:"required,max=40"`
	Description string `toml:"description" json:"description" validate:"max=200"`
	Icon        string `toml:"icon" json:"icon" validate:"max=4"`
	// Inline types are configured in the side-panel inspector instead of
	// a full detail tab.
	Inline bool `toml:"inline" json:"inline"`

	// Category is filled in from the enclosing category when loaded.
	Category string `toml:"-" json:"category"`
}

// Payload returns the drag payload that identifies this template.
func (t Template) Payload() Payload {
	return Payload{Type: t.Type, Name: t.Name}
}

// Category is a labelled, ordered group of templates.
type Category struct {
	Label     string     `toml:"label" json:"label" validate:"required,max=40"`
	Templates []Template `toml:"templates" json:"templates" validate:"dive"`
}
