package cypher

import (
	"sort"
	"strings"
)

// propMap holds inline property constraints for node and relationship
// patterns. Entries are kept sorted by key so rendering is deterministic
// regardless of insertion order.
type propMap []propEntry

type propEntry struct {
	key   string
	value any
}

// with returns a copy of the map with the entry set. The receiver is never
// modified; patterns holding the original map are unaffected.
func (m propMap) with(key string, value any) propMap {
	out := make(propMap, 0, len(m)+1)
	replaced := false
	for _, e := range m {
		if e.key == key {
			out = append(out, propEntry{key: key, value: value})
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, propEntry{key: key, value: value})
		sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	}
	return out
}

func (m propMap) writeTo(b *strings.Builder) {
	b.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteString(": ")
		b.WriteString(formatValue(e.value))
	}
	b.WriteByte('}')
}
