// Package symtab implements the symbol table ABI: a list of
// {name, pointer} records, where an entry whose name is empty or whose
// pointer is zero (the null-sentinel an equivalent C array would use)
// is skipped; entries after it are still registered.
//
// The core treats variables and functions identically here - a single
// name resolves to a single address - because it is the code
// generator's job (package compiler), not the table's, to know
// whether a given token.Token names one or the other.
package symtab

// Entry is one {name, pointer} record. The caller-facing ABI is the
// classic "contiguous array terminated by a null record": build a
// []Entry and simply stop appending real entries - an Entry{} (or any
// record with an empty Name or a zero Pointer) acts as the sentinel and
// is silently skipped by New.
type Entry struct {
	Name    string
	Pointer uintptr
}

// Table is a resolved, read-only view over a set of Entry records.
type Table struct {
	addresses map[string]uintptr
}

// New builds a Table from a list of entries, ignoring any whose Name
// is empty or whose Pointer is the null/zero value.
func New(entries []Entry) *Table {
	t := &Table{addresses: make(map[string]uintptr, len(entries))}
	for _, e := range entries {
		if e.Name == "" || e.Pointer == 0 {
			continue
		}
		t.addresses[e.Name] = e.Pointer
	}
	return t
}

// Lookup resolves a name to its address. The second return value is
// false if no entry was registered under that name.
func (t *Table) Lookup(name string) (uintptr, bool) {
	addr, ok := t.addresses[name]
	return addr, ok
}
