// Package query loads collections and single records through a keyed cache
// and reports loading, success and error states.
package query

// Key identifies a cached collection or record.
type Key struct {
	Module string
	ID     string
}

// ModuleKey addresses a module's whole collection.
func ModuleKey(module string) Key {
	return Key{Module: module}
}

// RecordKey addresses one record of a module.
func RecordKey(module, id string) Key {
	return Key{Module: module, ID: id}
}

// String renders "<module>" or "<module>:<id>".
func (k Key) String() string {
	if k.ID == "" {
		return k.Module
	}
	return k.Module + ":" + k.ID
}
