package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNotObject = errors.New("record does not encode to a JSON object")

// WriteCSV writes records as CSV. Columns are the JSON field names of the
// first record, in encoding order, written bare on the header line. Every
// value is quoted: strings as-is, numbers and booleans in their JSON form,
// nested values as compact JSON and null as empty. Rows are separated by a
// single newline with none after the last. No records writes nothing.
func WriteCSV[T any](w io.Writer, records []T) error {
	if len(records) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)

	var keys []string

	for i, rec := range records {
		fields, order, err := decodeFields(rec)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i+1, err)
		}

		if i == 0 {
			keys = order
			bw.WriteString(strings.Join(keys, ","))
		}

		bw.WriteByte('\n')

		for j, k := range keys {
			if j > 0 {
				bw.WriteByte(',')
			}

			bw.WriteString(quote(fieldText(fields[k])))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}

// decodeFields returns the raw JSON of each top-level field of rec together
// with the field order.
func decodeFields(rec any) (map[string]json.RawMessage, []string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, ErrNotObject
	}

	fields := make(map[string]json.RawMessage)

	var order []string

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}

		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}

		fields[key] = raw
		order = append(order, key)
	}

	return fields, order, nil
}

func fieldText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	return string(raw)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
