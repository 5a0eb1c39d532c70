package pinview

import (
	"fmt"
	"regexp"
	"strings"
)

// shorthandSeparator splits "key_value" shorthand names.
const shorthandSeparator = "_"

var eventName = regexp.MustCompile(`^on[A-Z][A-Za-z0-9]*$`)

// Shortcut registers a value alias: Invoke(alias) sets attribute key to
// alias. Invoke(key+"_"+alias) and Invoke(key+"Alias") resolve the same way.
func (b *Builder) Shortcut(alias, key string) *Builder {
	if b.shortcuts == nil {
		b.shortcuts = make(map[string]string)
	}
	b.shortcuts[alias] = key
	return b
}

// Shortcuts returns a copy of the shortcut table.
func (b *Builder) Shortcuts() map[string]string {
	out := make(map[string]string, len(b.shortcuts))
	for alias, key := range b.shortcuts {
		out[alias] = key
	}
	return out
}

// Invoke applies a shorthand call by name. The rules are checked in order:
//
//  1. Shortcuts and separated names set an attribute to a literal value.
//     A registered alias ("small" with small -> size), the alias behind its
//     key ("size_small", "sizeSmall"), or any "key_value" name sets the
//     kebab-cased key to the value.
//  2. Event names ("onClick", "onPageChange") bind an event handler. With
//     more than one argument the handler is a call expression of the first
//     argument with the rest as parameters: onPageChange("load", 1) gives
//     @page-change="load(1)". Otherwise the handler is the sole argument or
//     the event name itself.
//  3. Any other name sets the kebab-cased attribute to the sole argument, or
//     true without arguments.
func (b *Builder) Invoke(name string, args ...any) *Builder {
	if key, value, ok := b.resolveShortcut(name); ok {
		return b.Set(key, value)
	}
	if key, value, ok := strings.Cut(name, shorthandSeparator); ok {
		return b.Set(Kebab(key), value)
	}

	if eventName.MatchString(name) {
		event := lowerFirst(name[len("on"):])
		return b.VOn(event, eventHandler(event, args))
	}

	var value any = true
	if len(args) > 0 {
		value = args[0]
	}
	return b.Set(Kebab(name), value)
}

func (b *Builder) resolveShortcut(name string) (key, value string, ok bool) {
	if key, ok := b.shortcuts[name]; ok {
		return Kebab(key), name, true
	}
	for alias, key := range b.shortcuts {
		if name == key+shorthandSeparator+alias || name == key+upperFirst(alias) {
			return Kebab(key), alias, true
		}
	}
	return "", "", false
}

func eventHandler(event string, args []any) string {
	switch len(args) {
	case 0:
		return event
	case 1:
		return fmt.Sprint(args[0])
	}
	params := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		params = append(params, fmt.Sprint(arg))
	}
	return fmt.Sprintf("%v(%s)", args[0], strings.Join(params, ", "))
}
