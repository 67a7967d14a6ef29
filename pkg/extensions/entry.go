package extensions

// Entry is one raw value of the extension mapping, before normalization.
// It is either a SimpleEntry (the value was a bare color string) or an
// AdvancedEntry (the value was an object).
type Entry interface {
	entryKey() string
}

// SimpleEntry is `"PNG": "#FF0000"`.
type SimpleEntry struct {
	Key   string
	Color string
}

// AdvancedEntry is `"DOC": {"color": ..., "aliases": [...], "font_size": ...}`.
// Field values are kept as decoded so normalization can report bad types
// per field. Unknown object keys are dropped here.
type AdvancedEntry struct {
	Key string

	Color    interface{}
	HasColor bool

	Aliases    interface{}
	HasAliases bool

	FontSize    interface{}
	HasFontSize bool
}

func (e SimpleEntry) entryKey() string   { return e.Key }
func (e AdvancedEntry) entryKey() string { return e.Key }

// rawEntry is a key/value pair in document order.
type rawEntry struct {
	Key   string
	Value interface{}
}

// classify turns a decoded value into an Entry. Any shape other than a
// string or an object is a record error.
func classify(raw rawEntry) (Entry, error) {
	switch v := raw.Value.(type) {
	case string:
		return SimpleEntry{Key: raw.Key, Color: v}, nil
	case map[string]interface{}:
		entry := AdvancedEntry{Key: raw.Key}
		entry.Color, entry.HasColor = v["color"]
		entry.Aliases, entry.HasAliases = v["aliases"]
		entry.FontSize, entry.HasFontSize = v["font_size"]
		return entry, nil
	case nil:
		return nil, recordError(raw.Key, "missing color")
	default:
		return nil, recordErrorf(raw.Key, "value must be a color string or an object, got %s", describe(raw.Value))
	}
}
