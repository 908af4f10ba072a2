package options

// Option is a single choice inside of a Dimension.
type Option struct {
	// DisplayText is the label shown next to the checkbox.
	DisplayText string `json:"displayText" yaml:"displayText"`
	// OutputText is the line emitted when the option is in effect.
	OutputText string `json:"outputText" yaml:"outputText"`
	IsDefault  bool   `json:"isDefault" yaml:"isDefault"`
}

// Dimension is one independent axis of choice, e.g. which variant of a phrase
// goes into the generated text.
type Dimension struct {
	Title        string   `json:"title" yaml:"title"`
	Options      []Option `json:"options" yaml:"options"`
	DefaultIndex int      `json:"defaultIndex" yaml:"defaultIndex"`
}

// Default returns the option which is in effect when nothing is selected.
func (dimension Dimension) Default() Option {
	if dimension.DefaultIndex < 0 || dimension.DefaultIndex >= len(dimension.Options) {
		return Option{}
	}

	return dimension.Options[dimension.DefaultIndex]
}

// Toggleable reports whether the dimension has at least one option besides
// the default one. Dimensions that are not toggleable are always included in
// the output as is.
func (dimension Dimension) Toggleable() bool {
	return len(dimension.Options) > 1
}

// Section is a heading-delimited group of dimensions.
type Section struct {
	Key        string      `json:"key" yaml:"key"`
	Title      string      `json:"title" yaml:"title"`
	Dimensions []Dimension `json:"dimensions" yaml:"dimensions"`
}
