package tablet

// toolEntry is one interned (kind, serial) identity. registered is true
// while the ToolRegistry itself still holds a reference to the entry;
// it becomes false once DestroyAll runs, after which the entry survives
// only for as long as some outstanding ToolHandle still references it.
type toolEntry struct {
	kind       ToolKind
	serial     uint32
	refcount   int
	registered bool
}

// ToolHandle is a stable reference to an interned tool identity. The
// zero value is the invalid handle; it is what Intern would return on
// an (unmodeled in practice) allocation failure, per spec.md §7.
type ToolHandle struct {
	Kind   ToolKind
	Serial uint32
	entry  *toolEntry
}

// Valid reports whether h refers to a live registry entry.
func (h ToolHandle) Valid() bool {
	return h.entry != nil
}

// ToolRegistry interns (kind, serial) pairs so a tool re-entering
// proximity resolves to the same identity it had before. Per spec.md
// §4.3 the backing collection is a small linear slice — N is tiny in
// practice, and this is exactly the redesign spec.md §9 asks for in
// place of the source's intrusive linked list.
type ToolRegistry struct {
	entries []*toolEntry
}

// NewToolRegistry returns an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{}
}

// Intern returns the handle for (kind, serial), creating and
// registering a new entry if this is the first time the pair has been
// observed. A newly created entry starts with refcount 2: one held by
// the registry itself, one for the caller (who is handing the returned
// handle to a notification recipient; see spec.md §6).
//
// The bool result mirrors spec.md §7's treatment of the source's
// zalloc-without-check allocation path: it is always true under normal
// operation, but lets a caller (see Dispatcher.emitToolUpdate) skip emitting the
// tool-update notification this frame rather than assume success
// unconditionally.
func (r *ToolRegistry) Intern(kind ToolKind, serial uint32) (ToolHandle, bool) {
	var entry *toolEntry

	for _, entry = range r.entries {
		if entry.kind == kind && entry.serial == serial {
			entry.refcount++

			return ToolHandle{Kind: kind, Serial: serial, entry: entry}, true
		}
	}

	entry = &toolEntry{kind: kind, serial: serial, refcount: 2, registered: true}
	r.entries = append(r.entries, entry)

	return ToolHandle{Kind: kind, Serial: serial, entry: entry}, true
}

// Release decrements h's reference count. Releasing the zero handle is
// a no-op.
func (r *ToolRegistry) Release(h ToolHandle) {
	if h.entry == nil {
		return
	}

	h.entry.refcount--
}

// DestroyAll releases every reference the registry itself holds, and
// forgets all entries. Outstanding handles held by clients remain valid
// (their own reference survives) until those clients release them in
// turn; this registry no longer tracks or interns against them.
func (r *ToolRegistry) DestroyAll() {
	var entry *toolEntry

	for _, entry = range r.entries {
		entry.registered = false
		entry.refcount--
	}

	r.entries = nil
}
