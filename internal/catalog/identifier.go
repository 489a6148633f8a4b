package catalog

import (
	"encoding/json"
	"slices"
	"strings"
	"unicode"
)

// URLSeparator joins namespace levels in the REST catalog URL form.
const URLSeparator = "\x1f"

// Namespace is an ordered, non-empty sequence of non-empty name segments.
type Namespace []string

// ParseNamespace validates caller input and turns it into a Namespace.
//
// The whole input becomes a single segment: the tool surface does not split
// on any delimiter, only the backend itself may be hierarchical. Blank input
// and input containing control characters (including the URL level
// separator) are rejected with InvalidArgument.
func ParseNamespace(raw string) (Namespace, error) {
	if err := validateSegment(raw, "namespace"); err != nil {
		return nil, err
	}
	return Namespace{raw}, nil
}

// NamespaceFromSegments builds a Namespace from already split levels, as
// returned by a backend.
func NamespaceFromSegments(segments []string) (Namespace, error) {
	if len(segments) == 0 {
		return nil, NewError(KindInvalidArgument, "namespace must have at least one level")
	}
	for _, s := range segments {
		if err := validateSegment(s, "namespace level"); err != nil {
			return nil, err
		}
	}
	return slices.Clone(Namespace(segments)), nil
}

func validateSegment(s, what string) error {
	if strings.TrimSpace(s) == "" {
		return NewError(KindInvalidArgument, "%s must not be empty", what)
	}
	if strings.ContainsFunc(s, unicode.IsControl) {
		return NewError(KindInvalidArgument, "%s %q contains control characters", what, s)
	}
	return nil
}

// Levels returns a copy of the segments.
func (n Namespace) Levels() []string {
	return slices.Clone([]string(n))
}

// String returns the dotted display form, e.g. "warehouse.sales".
func (n Namespace) String() string {
	return strings.Join(n, ".")
}

// URLString returns the REST catalog form, levels joined by the unit
// separator. For single-level namespaces it equals the level itself.
func (n Namespace) URLString() string {
	return strings.Join(n, URLSeparator)
}

// Equal reports whether both namespaces have the same levels in order.
func (n Namespace) Equal(other Namespace) bool {
	return slices.Equal(n, other)
}

// TableIdentifier names a table inside a namespace.
type TableIdentifier struct {
	Namespace Namespace `json:"namespace"`
	Name      string    `json:"name"`
}

// NewTableIdentifier combines a namespace and a table name. A blank name is a
// caller contract violation and fails with InvalidArgument.
func NewTableIdentifier(ns Namespace, name string) (TableIdentifier, error) {
	if len(ns) == 0 {
		return TableIdentifier{}, NewError(KindInvalidArgument, "namespace must not be empty")
	}
	if err := validateSegment(name, "table name"); err != nil {
		return TableIdentifier{}, err
	}
	return TableIdentifier{Namespace: slices.Clone(ns), Name: name}, nil
}

// Levels returns namespace levels followed by the table name, the shape the
// Iceberg client libraries use for identifiers.
func (t TableIdentifier) Levels() []string {
	return append(t.Namespace.Levels(), t.Name)
}

// String returns "namespace.table".
func (t TableIdentifier) String() string {
	return t.Namespace.String() + "." + t.Name
}

// Equal reports whether both identifiers name the same table.
func (t TableIdentifier) Equal(other TableIdentifier) bool {
	return t.Name == other.Name && t.Namespace.Equal(other.Namespace)
}

// MarshalJSON keeps an empty namespace as [] rather than null.
func (n Namespace) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(n))
}
