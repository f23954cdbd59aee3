package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Record is one row of an export: column name to cell text, in insertion
// order. The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a record from column/value pairs. A trailing column
// without a value is ignored.
func NewRecord(pairs ...string) Record {
	var r Record
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Set assigns a cell. Existing columns keep their position.
func (r *Record) Set(column, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[column]; !ok {
		r.keys = append(r.keys, column)
	}
	r.values[column] = value
}

// Get returns the cell for column and whether the column exists.
func (r Record) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Value returns the cell for column, "" when missing.
func (r Record) Value(column string) string {
	return r.values[column]
}

// Keys returns the columns in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r Record) Len() int {
	return len(r.keys)
}

// Text joins every cell with a space, the text a reader sees on the row.
func (r Record) Text() string {
	cells := make([]string, len(r.keys))
	for i, k := range r.keys {
		cells[i] = r.values[k]
	}
	return strings.Join(cells, " ")
}

// MarshalJSON writes the record as an object with keys in order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object keeping the key order of the
// document. Strings are taken as is, numbers keep their literal text,
// booleans render as "true"/"false" and null as "". Nested values are
// rejected with ErrInvalidRecord.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errors.Join(ErrInvalidRecord, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object", ErrInvalidRecord)
	}

	*r = Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Join(ErrInvalidRecord, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expected key", ErrInvalidRecord)
		}

		tok, err = dec.Token()
		if err != nil {
			return errors.Join(ErrInvalidRecord, err)
		}

		switch v := tok.(type) {
		case string:
			r.Set(key, v)
		case json.Number:
			r.Set(key, v.String())
		case bool:
			r.Set(key, fmt.Sprint(v))
		case nil:
			r.Set(key, "")
		default:
			return fmt.Errorf("%w: column %q is not a scalar", ErrInvalidRecord, key)
		}
	}

	if _, err := dec.Token(); err != nil {
		return errors.Join(ErrInvalidRecord, err)
	}
	return nil
}

// Table is an ordered list of records.
type Table []Record

// Columns returns the column order of the table: the keys of its first record.
func (t Table) Columns() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0].Keys()
}
