package main

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
)

const (
	workaroundField = "workaround"
	workaroundValue = "IE"
)

type formField struct {
	name  string
	value string
}

// form mirrors the page form the rules are submitted from: declared method,
// target address and the ordered field set, editable field first.
type form struct {
	method string
	action string
	fields []formField
}

type formSnapshot struct {
	fields []formField
}

func newForm(method, action string, fields ...formField) form {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = defaultMethod
	}
	return form{
		method: method,
		action: action,
		fields: append([]formField(nil), fields...),
	}
}

func (f *form) set(name, value string) {
	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i].value = value
			return
		}
	}
	f.fields = append(f.fields, formField{name: name, value: value})
}

func (f form) value(name string) (string, bool) {
	for _, field := range f.fields {
		if field.name == name {
			return field.value, true
		}
	}
	return "", false
}

// snapshot captures the current field set plus the synthetic workaround
// field. Callers flush the editor first.
func (f form) snapshot() formSnapshot {
	fields := make([]formField, 0, len(f.fields)+1)
	fields = append(fields, f.fields...)
	fields = append(fields, formField{name: workaroundField, value: workaroundValue})
	return formSnapshot{fields: fields}
}

func (s formSnapshot) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range s.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to encode field %q: %w", field.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to encode form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
