// Package validation define las formas de request independientes del storage
// y los errores de validación con detalle por campo.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// FieldError describe un problema en un campo concreto.
// Loc es la ruta del campo, p.ej. ["body", "description"] o ["path", "task_id"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Errors acumula FieldError; vacío = válido.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *Errors) Add(fe FieldError) {
	*e = append(*e, fe)
}

// Err devuelve nil si no hay errores (evita el nil-interface con slice vacío).
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsErrors extrae Errors de un error envuelto.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func Missing(loc ...string) FieldError {
	return FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
}

func NotNull(loc ...string) FieldError {
	return FieldError{Loc: loc, Msg: "none is not an allowed value", Type: "type_error.none.not_allowed"}
}

func Blank(loc ...string) FieldError {
	return FieldError{Loc: loc, Msg: "must not be blank", Type: "value_error.blank"}
}

func WrongType(kind string, loc ...string) FieldError {
	msg := "value is not a valid " + kind
	if kind == "datetime" {
		return FieldError{Loc: loc, Msg: "invalid datetime format", Type: "value_error.datetime"}
	}
	return FieldError{Loc: loc, Msg: msg, Type: "type_error." + kind}
}

// Body es un objeto JSON decodificado a medias: cada campo se valida por separado
// para poder reportar todos los errores de una vez.
type Body map[string]json.RawMessage

// DecodeBody lee un objeto JSON. Body vacío o JSON inválido => Errors.
func DecodeBody(r io.Reader) (Body, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Errors{Missing("body")}
		}
		return nil, Errors{{
			Loc:  []string{"body"},
			Msg:  "invalid json",
			Type: "value_error.jsondecode",
		}}
	}
	if raw == nil {
		return nil, Errors{NotNull("body")}
	}
	return Body(raw), nil
}

func isNull(v json.RawMessage) bool {
	return strings.TrimSpace(string(v)) == "null"
}

// String lee un campo string. Si required y falta, agrega el error y devuelve "".
func (b Body) String(name string, required bool, errs *Errors) string {
	v, ok := b[name]
	if !ok {
		if required {
			errs.Add(Missing("body", name))
		}
		return ""
	}
	if isNull(v) {
		errs.Add(NotNull("body", name))
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		errs.Add(WrongType("str", "body", name))
		return ""
	}
	return s
}

// Bool lee un campo booleano con default.
func (b Body) Bool(name string, def bool, errs *Errors) bool {
	v, ok := b[name]
	if !ok {
		return def
	}
	if isNull(v) {
		errs.Add(NotNull("body", name))
		return def
	}
	var out bool
	if err := json.Unmarshal(v, &out); err != nil {
		// también aceptamos "true"/"false" como string
		var s string
		if json.Unmarshal(v, &s) == nil {
			if parsed, err := ParseBool(s); err == nil {
				return parsed
			}
		}
		errs.Add(WrongType("bool", "body", name))
		return def
	}
	return out
}

// Has indica si el campo vino en el body (aunque sea null).
func (b Body) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// Time lee un timestamp. Opcional: ausente o null => nil.
// Requerido: ausente o null => error.
func (b Body) Time(name string, required bool, errs *Errors) *time.Time {
	v, ok := b[name]
	if !ok || isNull(v) {
		if required {
			if ok {
				errs.Add(NotNull("body", name))
			} else {
				errs.Add(Missing("body", name))
			}
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		errs.Add(WrongType("datetime", "body", name))
		return nil
	}
	t, err := ParseTime(s)
	if err != nil {
		errs.Add(WrongType("datetime", "body", name))
		return nil
	}
	return &t
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTime acepta RFC3339 y variantes sin zona (se interpretan como UTC).
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// ParseBool es más permisivo que strconv.ParseBool (yes/no/on/off).
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
}

// PathID parsea un id entero de la ruta.
func PathID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, Errors{WrongType("integer", "path", name)}
	}
	return id, nil
}
