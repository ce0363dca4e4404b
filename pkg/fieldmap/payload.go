package fieldmap

import (
	"strings"

	"github.com/tidwall/sjson"
)

// Payload is an insertion-ordered JSON object, mostly the request body for a
// record write keyed by API field name.
// The body is built with sjson, which appends new keys and replaces existing
// ones in place, so previews and request bodies read in the order the fields
// were assembled.
type Payload struct {
	keys   []string
	values map[string]interface{}
	body   []byte
	err    error
}

func NewPayload() *Payload {
	return &Payload{
		values: map[string]interface{}{},
		body:   []byte(`{}`),
	}
}

// pathEscaper escapes the characters sjson reads as path syntax, so a field
// name is always addressed as a single key.
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
)

// Set stores value under field. Re-setting a field replaces its value but
// keeps its first position. An encoding failure is reported by MarshalJSON.
func (p *Payload) Set(field string, value interface{}) {
	if _, ok := p.values[field]; !ok {
		p.keys = append(p.keys, field)
	}
	p.values[field] = value

	if p.err != nil {
		return
	}
	body, err := sjson.SetBytes(p.body, pathEscaper.Replace(field), value)
	if err != nil {
		p.err = err
		return
	}
	p.body = body
}

func (p *Payload) Get(field string) (interface{}, bool) {
	v, ok := p.values[field]
	return v, ok
}

func (p *Payload) Keys() []string {
	return append([]string(nil), p.keys...)
}

func (p *Payload) Len() int {
	return len(p.keys)
}

func (p *Payload) MarshalJSON() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.body, nil
}
