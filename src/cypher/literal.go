package cypher

import (
	"fmt"
	"strconv"
	"strings"
)

// formatValue renders a primitive literal value as Cypher text. Strings use
// single-quote delimiters with internal single quotes escaped; integers
// render without a decimal point; floats always carry a fractional digit so
// they read back as floats. Formatting is deterministic across platforms.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case Expression:
		return renderExpression(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return quoteString(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	default:
		// Garbage in, garbage out: unknown kinds render via fmt rather
		// than failing at render time.
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
