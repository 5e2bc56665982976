package catalog

// Entry is one item in the catalog. An empty Box means the item has no
// recorded storage box.
type Entry struct {
	Title string
	Box   string
	Cover bool
}

// DisplayLabel returns the label shown in the Box column: the box if set,
// "COVER" for box-less items that have a cover, "UNKNOWN" otherwise.
// It is derived on every call and never stored.
func (e Entry) DisplayLabel() string {
	if e.Box != "" {
		return e.Box
	}
	if e.Cover {
		return "COVER"
	}
	return "UNKNOWN"
}
