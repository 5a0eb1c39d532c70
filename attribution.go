package pinview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	propertyMarker = ":"
	escapeMarker   = `\`
)

// Attribution is a single attribute name/value pair classified as either a
// static HTML attribute or a bound property.
//
// Classification rules:
//   - a leading ':' on the name marks a property and is stripped
//   - a string value starting with ':' marks a property; the marker is stripped
//   - a string value starting with `\:` or `\\` loses one escape level and stays static
//   - booleans, numbers, slices and maps are always properties
//   - a nil value on a property renders as "true"
//
// Properties render as :name="value", static attributes as name="value", and
// a static attribute without a value as the bare name.
type Attribution struct {
	name     string
	value    string
	hasValue bool
	raw      bool
	property bool
}

// NewAttribution classifies name and value. The optional property hint forces
// the pair to be treated as a bound property.
func NewAttribution(name string, value any, property ...bool) *Attribution {
	a := &Attribution{}
	a.parse(name, value, len(property) > 0 && property[0])
	return a
}

func (a *Attribution) parse(name string, value any, property bool) {
	if strings.HasPrefix(name, propertyMarker) {
		name = name[len(propertyMarker):]
		property = true
	}
	a.name = name
	a.property = property

	switch v := value.(type) {
	case nil:
		if a.property {
			a.value, a.hasValue = "true", true
		}
		return
	case Raw:
		a.value, a.raw = string(v), true
	case string:
		a.value = a.unescape(v)
	case bool:
		a.value = strconv.FormatBool(v)
		a.property = true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		a.value = fmt.Sprint(v)
		a.property = true
	case float32:
		a.value = strconv.FormatFloat(float64(v), 'f', -1, 32)
		a.property = true
	case float64:
		a.value = strconv.FormatFloat(v, 'f', -1, 64)
		a.property = true
	default:
		a.value = encodeJSON(v)
		a.property = true
	}
	a.hasValue = true
}

func (a *Attribution) unescape(v string) string {
	switch {
	case strings.HasPrefix(v, propertyMarker):
		a.property = true
		return v[len(propertyMarker):]
	case strings.HasPrefix(v, escapeMarker+propertyMarker),
		strings.HasPrefix(v, escapeMarker+escapeMarker):
		return v[len(escapeMarker):]
	}
	return v
}

// Name returns the attribute name without the property marker.
func (a *Attribution) Name() string {
	return a.name
}

// Value returns the rendered value and whether there is one.
func (a *Attribution) Value() (string, bool) {
	return a.value, a.hasValue
}

// IsProperty reports whether the pair renders as a bound property.
func (a *Attribution) IsProperty() bool {
	return a.property
}

// Is reports whether other names the same attribute. other may be a string
// (with or without the property marker) or another *Attribution.
func (a *Attribution) Is(other any) bool {
	switch o := other.(type) {
	case string:
		return a.name == strings.TrimPrefix(o, propertyMarker)
	case *Attribution:
		return o != nil && a.name == o.name
	}
	return false
}

// Build renders the pair.
func (a *Attribution) Build() string {
	return a.render(nil)
}

func (a *Attribution) String() string {
	return a.Build()
}

// render builds the pair, passing non-raw values through replace.
func (a *Attribution) render(replace *strings.Replacer) string {
	if a.name == "" {
		return ""
	}
	if !a.hasValue {
		return a.name
	}
	value := a.value
	if replace != nil && !a.raw {
		value = replace.Replace(value)
	}
	if a.property {
		return propertyMarker + a.name + `="` + value + `"`
	}
	return a.name + `="` + value + `"`
}

// encodeJSON renders v as compact JSON without HTML escaping.
func encodeJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		tracer().Errorf("attribute value %T is not JSON encodable: %v", v, err)
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
