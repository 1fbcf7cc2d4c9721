package apimodel

// Kind tags an API item with its documentation-entity kind. The set is
// closed: encountering any other value indicates a version mismatch with
// the upstream extraction tool and fails the whole run.
type Kind string

const (
	// Root-level containers supplied by the extraction tool. They never
	// render pages and contribute no filename segments.
	KindModel      Kind = "Model"
	KindEntryPoint Kind = "EntryPoint"

	KindPackage           Kind = "Package"
	KindNamespace         Kind = "Namespace"
	KindClass             Kind = "Class"
	KindInterface         Kind = "Interface"
	KindEnum              Kind = "Enum"
	KindFunction          Kind = "Function"
	KindMethod            Kind = "Method"
	KindMethodSignature   Kind = "MethodSignature"
	KindProperty          Kind = "Property"
	KindPropertySignature Kind = "PropertySignature"
	KindTypeAlias         Kind = "TypeAlias"
	KindVariable          Kind = "Variable"
)

var supportedKinds = map[Kind]bool{
	KindModel:             true,
	KindEntryPoint:        true,
	KindPackage:           true,
	KindNamespace:         true,
	KindClass:             true,
	KindInterface:         true,
	KindEnum:              true,
	KindFunction:          true,
	KindMethod:            true,
	KindMethodSignature:   true,
	KindProperty:          true,
	KindPropertySignature: true,
	KindTypeAlias:         true,
	KindVariable:          true,
}

// Supported reports whether the kind belongs to the closed supported set.
func (k Kind) Supported() bool {
	return supportedKinds[k]
}

// RootContainer reports whether the kind is a root-level container that
// is skipped during filename derivation.
func (k Kind) RootContainer() bool {
	return k == KindModel || k == KindEntryPoint
}

// InlinesOnParent reports whether items of this kind render as anchors on
// their container's page instead of separate pages.
func (k Kind) InlinesOnParent() bool {
	switch k {
	case KindMethod, KindMethodSignature, KindProperty, KindPropertySignature:
		return true
	}
	return false
}

// HasOwnPage reports whether items of this kind get a dedicated page.
func (k Kind) HasOwnPage() bool {
	switch k {
	case KindPackage, KindNamespace, KindClass, KindInterface,
		KindEnum, KindFunction, KindTypeAlias, KindVariable:
		return true
	}
	return false
}

// Callable reports whether items of this kind can be overloaded.
func (k Kind) Callable() bool {
	switch k {
	case KindFunction, KindMethod, KindMethodSignature:
		return true
	}
	return false
}
