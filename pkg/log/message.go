package log

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Arg is a labelled value attached to a message.
type Arg struct {
	Label string
	Value any
}

// A returns an Arg with a normalized label: trimmed, lowercase, dashes
// replaced by underscores.
func A(label string, value any) Arg {
	return Arg{
		Label: NormalizeLabel(label),
		Value: value,
	}
}

// NormalizeLabel applies the Arg label rules to s.
func NormalizeLabel(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// String returns "[label=value]" with the value rendered by FormatValue.
func (a Arg) String() string {
	return "[" + a.Label + "=" + FormatValue(a.Value) + "]"
}

// FormatValue renders a value for human consumption.
//
// nil renders as "(null)", strings are quoted, maps render as {k: v, ...}
// with keys sorted, slices as List(...) and arrays as Array(...). Nested
// containers are rendered recursively. A map, slice or pointer that
// contains itself renders as "(this Map)", "(this List)" or
// "(this Pointer)" at the point it repeats. Anything else uses fmt.
func FormatValue(value any) string {
	var b strings.Builder
	f := formatter{b: &b}
	f.write(value)
	return b.String()
}

// visit identifies a container by address and type.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// formatter renders values, tracking the containers on the current path.
type formatter struct {
	b      *strings.Builder
	active map[visit]bool
}

// enter marks rv as being rendered. It returns false if rv is already on
// the current path.
func (f *formatter) enter(rv reflect.Value) (visit, bool) {
	v := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if v.ptr == 0 {
		return v, true
	}
	if f.active[v] {
		return v, false
	}
	if f.active == nil {
		f.active = make(map[visit]bool)
	}
	f.active[v] = true
	return v, true
}

func (f *formatter) leave(v visit) {
	delete(f.active, v)
}

func (f *formatter) write(value any) {
	b := f.b
	if value == nil {
		b.WriteString("(null)")
		return
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		b.WriteString("(null)")
		return
	}

	switch v := value.(type) {
	case string:
		b.WriteString(`"` + v + `"`)
		return
	case fmt.Stringer, error:
		fmt.Fprint(b, v)
		return
	}

	var self string
	switch rv.Kind() {
	case reflect.Pointer:
		self = "(this Pointer)"
	case reflect.Map:
		self = "(this Map)"
	case reflect.Slice:
		self = "(this List)"
	case reflect.Array:
		f.writeIterable("Array", rv)
		return
	default:
		fmt.Fprint(b, value)
		return
	}

	v, ok := f.enter(rv)
	if !ok {
		b.WriteString(self)
		return
	}
	defer f.leave(v)

	switch rv.Kind() {
	case reflect.Pointer:
		f.write(rv.Elem().Interface())
	case reflect.Map:
		f.writeMap(rv)
	default:
		f.writeIterable("List", rv)
	}
}

func (f *formatter) writeMap(rv reflect.Value) {
	type entry struct {
		key   string
		value reflect.Value
	}

	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	b := f.b
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteString(": ")
		f.write(e.value.Interface())
	}
	b.WriteByte('}')
}

func (f *formatter) writeIterable(kind string, rv reflect.Value) {
	b := f.b
	b.WriteString(kind)
	b.WriteByte('(')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		f.write(rv.Index(i).Interface())
	}
	b.WriteByte(')')
}

// Message is a log message with its arguments.
type Message struct {
	Text string
	Args []Arg
}

// NewMessage returns a message with the given arguments.
func NewMessage(text string, args ...Arg) Message {
	return Message{Text: text, Args: args}
}

// MessageFromMap returns a message whose arguments come from args, ordered
// by normalized label.
func MessageFromMap(text string, args map[string]any) Message {
	out := make([]Arg, 0, len(args))
	for label, value := range args {
		out = append(out, A(label, value))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return Message{Text: text, Args: out}
}

// String returns the trimmed text followed by every argument.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(m.Text))
	for _, arg := range m.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	return strings.TrimSpace(b.String())
}

// FormatError renders err for log output: the %+v form of err followed by
// one "Caused by:" line for every error in its Unwrap chain. A nil error
// renders as "(null)".
func FormatError(err error) string {
	if err == nil {
		return "(null)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%+v", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(&b, "\nCaused by: %T: %v", cause, cause)
	}
	return b.String()
}
