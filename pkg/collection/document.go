package collection

import "fmt"

// SectionsKey is the top-level member holding a collection's folders and requests.
const SectionsKey = "item"

// Document is a loaded collection: a root object whose SectionsKey member is an
// array of named sections. All other top-level members are carried untouched.
type Document struct {
	root Value
	// position of the SectionsKey member inside root
	itemsAt int
}

// NewDocument wraps root, checking that it is an object with an array of
// sections under SectionsKey.
func NewDocument(root Value) (*Document, error) {
	if root.Kind() != KindObject {
		return nil, fmt.Errorf("top-level value is %s, expected object", root.Kind())
	}
	at := root.index(SectionsKey)
	if at < 0 {
		return nil, fmt.Errorf("missing top-level %q list", SectionsKey)
	}
	if kind := root.members[at].Value.Kind(); kind != KindArray {
		return nil, fmt.Errorf("top-level %q is %s, expected array", SectionsKey, kind)
	}
	return &Document{root: root, itemsAt: at}, nil
}

// Parse decodes JSON data into a Document.
func Parse(data []byte) (*Document, error) {
	root, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NewDocument(root)
}

// Root returns the whole document tree.
func (d *Document) Root() Value { return d.root }

// Sections returns the top-level sections in document order.
func (d *Document) Sections() []Value {
	return d.root.members[d.itemsAt].Value.elems
}

// SectionNames returns the name of every top-level section that has one.
// Entries without a string name are skipped.
func (d *Document) SectionNames() []string {
	var names []string
	for _, s := range d.Sections() {
		if name, ok := s.Name(); ok {
			names = append(names, name)
		}
	}
	return names
}

// HasSection reports whether a top-level section is named name.
func (d *Document) HasSection(name string) bool {
	for _, s := range d.Sections() {
		if n, ok := s.Name(); ok && n == name {
			return true
		}
	}
	return false
}

// AppendSection adds a copy of section after all existing sections.
func (d *Document) AppendSection(section Value) {
	d.root.members[d.itemsAt].Value.Append(section.Clone())
}

// Encode serializes the document with the given indent.
func (d *Document) Encode(indent string) ([]byte, error) {
	return Encode(d.root, indent)
}
