package pinview

import (
	"fmt"
	"strings"
)

// VText adds a v-text directive.
func (b *Builder) VText(expr string) *Builder {
	return b.Set("v-text", expr)
}

// VHtml adds a v-html directive.
func (b *Builder) VHtml(expr string) *Builder {
	return b.Set("v-html", expr)
}

// VShow adds a v-show directive.
func (b *Builder) VShow(expr string) *Builder {
	return b.Set("v-show", expr)
}

// VIf adds a v-if directive.
func (b *Builder) VIf(expr string) *Builder {
	return b.Set("v-if", expr)
}

// VElseIf adds a v-else-if directive.
func (b *Builder) VElseIf(expr string) *Builder {
	return b.Set("v-else-if", expr)
}

// VElse adds a v-else directive.
func (b *Builder) VElse() *Builder {
	b.attribute.Flag("v-else")
	return b
}

// VFor adds a v-for directive.
func (b *Builder) VFor(expr string) *Builder {
	return b.Set("v-for", expr)
}

// VOn binds an event handler: @{event}="handler". The event name is
// kebab-cased; modifiers may follow it ("click.native").
func (b *Builder) VOn(event, handler string) *Builder {
	name := Kebab(event)
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return b.Set(name, handler)
}

// VOnMap binds several event handlers, in event name order.
func (b *Builder) VOnMap(handlers map[string]string) *Builder {
	for _, event := range sortedKeys(handlers) {
		b.VOn(event, handlers[event])
	}
	return b
}

// VClick binds a click handler with an optional modifier.
func (b *Builder) VClick(handler string, modifier ...string) *Builder {
	event := "click"
	if len(modifier) > 0 && modifier[0] != "" {
		event += "." + modifier[0]
	}
	return b.VOn(event, handler)
}

// VAssign binds a click handler that assigns value to name.
func (b *Builder) VAssign(name string, value any) *Builder {
	return b.VClick(fmt.Sprintf("%s = %v", name, value))
}

// VBind binds an attribute to an expression: :{name}="value".
func (b *Builder) VBind(name string, value any) *Builder {
	if !strings.HasPrefix(name, propertyMarker) {
		name = propertyMarker + name
	}
	return b.Set(name, value)
}

// VBindMap binds several attributes, in name order.
func (b *Builder) VBindMap(values map[string]any) *Builder {
	for _, name := range sortedKeys(values) {
		b.VBind(name, values[name])
	}
	return b
}

// VModel adds a v-model directive with an optional modifier.
func (b *Builder) VModel(model string, modifier ...string) *Builder {
	name := "v-model"
	if len(modifier) > 0 && modifier[0] != "" {
		name += "." + modifier[0]
	}
	return b.Set(name, model)
}

// VPre adds a v-pre directive.
func (b *Builder) VPre() *Builder {
	b.attribute.Flag("v-pre")
	return b
}

// VCloak adds a v-cloak directive.
func (b *Builder) VCloak() *Builder {
	b.attribute.Flag("v-cloak")
	return b
}

// VOnce adds a v-once directive.
func (b *Builder) VOnce() *Builder {
	b.attribute.Flag("v-once")
	return b
}

// Ref sets the ref attribute, defaulting to the builder id.
func (b *Builder) Ref(name ...string) *Builder {
	ref := b.BuilderID()
	if len(name) > 0 && name[0] != "" {
		ref = name[0]
	}
	return b.Set("ref", ref)
}
