// Package command encodes workflow commands: single lines of the form
//
//	::name key=value,key=value::payload
//
// that an outer orchestrator reads from a process's output stream.
package command

import (
	"strings"
)

const cmdString = "::"

// Property is a single key=value pair attached to a command.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered set of command properties. Order is significant:
// properties are rendered exactly in slice order.
type Properties []Property

// Props builds Properties from alternating key, value arguments.
// A trailing key without a value is paired with the empty string.
func Props(kv ...string) Properties {
	props := make(Properties, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		p := Property{Key: kv[i]}
		if i+1 < len(kv) {
			p.Value = kv[i+1]
		}
		props = append(props, p)
	}
	return props
}

// Set replaces the value of an existing key in place, keeping its position,
// or appends a new property.
func (p *Properties) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Property{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (p Properties) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Command is an immutable workflow command value.
type Command struct {
	Name       string
	Properties Properties
	Payload    any
}

// New creates a Command. The properties slice is copied so later mutation by
// the caller does not change the command.
func New(name string, props Properties, payload any) Command {
	var copied Properties
	if len(props) > 0 {
		copied = make(Properties, len(props))
		copy(copied, props)
	}
	return Command{Name: name, Properties: copied, Payload: payload}
}

// Conventional reports whether the command name belongs to the known vocabulary.
func (c Command) Conventional() bool {
	return IsConventional(c.Name)
}

// String renders the canonical wire form of the command. It never fails:
// an empty command renders as "::::".
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(cmdString)
	b.WriteString(c.Name)

	for i, prop := range c.Properties {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(prop.Key)
		b.WriteByte('=')
		b.WriteString(EscapeProperty(prop.Value))
	}

	b.WriteString(cmdString)
	b.WriteString(EscapeData(ToCommandValue(c.Payload)))
	return b.String()
}

// Encode is shorthand for New(name, props, payload).String().
func Encode(name string, props Properties, payload any) string {
	return New(name, props, payload).String()
}
