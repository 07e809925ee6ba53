package lang

import "iter"

// Document is the compiled result of a manifest: an ordered mapping from
// constant names to resolved values. A name redeclared during
// compilation keeps only its final value, at the position of the final
// declaration.
type Document struct {
	names  []string
	index  map[string]int
	values []Value
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{index: make(map[string]int)}
}

// Len returns the number of distinct constant names in the document.
func (d *Document) Len() int {
	return len(d.names)
}

// Get returns the value bound to name, and whether the name is defined.
func (d *Document) Get(name string) (Value, bool) {
	i, ok := d.index[name]
	if !ok {
		return Value{}, false
	}

	return d.values[i], true
}

// Names returns the constant names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)

	return names
}

// All returns an iterator over name and value pairs in document order.
func (d *Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, name := range d.names {
			if !yield(name, d.values[i]) {
				return
			}
		}
	}
}

// ToMap converts the document to an unordered map of native Go values.
func (d *Document) ToMap() map[string]any {
	m := make(map[string]any, len(d.names))
	for i, name := range d.names {
		m[name] = d.values[i].Native()
	}

	return m
}

// bind sets name to value. Redeclaring a name removes its previous
// entry; the name takes the position of this newest declaration.
func (d *Document) bind(name string, value Value) {
	if i, ok := d.index[name]; ok {
		d.names = append(d.names[:i], d.names[i+1:]...)
		d.values = append(d.values[:i], d.values[i+1:]...)

		for j := i; j < len(d.names); j++ {
			d.index[d.names[j]] = j
		}
	}

	d.index[name] = len(d.names)
	d.names = append(d.names, name)
	d.values = append(d.values, value)
}
