package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringArray maps a Postgres text[] column. It implements the GORM
// Scanner/Valuer pair so skill lists round-trip without a separate join table.
type StringArray []string

func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}

	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}

	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if s == "" {
		*a = StringArray{}
		return nil
	}

	*a = parseArrayElements(s)
	return nil
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	parts := make([]string, len(a))
	for i, s := range a {
		parts[i] = quoteArrayElement(s)
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// parseArrayElements splits the body of a Postgres array literal, honoring
// double-quoted elements that may contain commas or escaped quotes.
func parseArrayElements(s string) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
		escaped  bool
	)

	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	out = append(out, cur.String())

	for i := range out {
		if out[i] == "NULL" {
			out[i] = ""
		}
	}
	return out
}

func quoteArrayElement(s string) string {
	if s == "" || strings.ContainsAny(s, `,{}"\ `) {
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		return `"` + s + `"`
	}
	return s
}
