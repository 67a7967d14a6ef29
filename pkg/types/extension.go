package types

// ExtensionRecord is one normalized entry of the extension mapping.
type ExtensionRecord struct {
	// Key is the key exactly as written in the configuration document
	Key string

	// Name is the trimmed, uppercased primary extension
	Name string

	// Color is passed through verbatim (usually #RRGGBB)
	Color string

	// Aliases are trimmed, uppercased, unique within the record and never equal to Name
	Aliases []string

	// FontSize overrides the length-based size for every label of the record
	FontSize *float64
}

// Labels returns the primary name followed by the aliases, in declaration order.
func (r ExtensionRecord) Labels() []string {
	labels := make([]string, 0, len(r.Aliases)+1)
	labels = append(labels, r.Name)
	labels = append(labels, r.Aliases...)
	return labels
}
