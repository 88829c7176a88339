package cked

import (
	"strings"

	"github.com/pthm/cked/lib/jsenc"
)

// EventTable maps editor event names to handler code.
//
// Each handler is script source for a function or the name of one. Handlers
// of one event keep the order they were added in and duplicates are ignored.
//
//	events := cked.NewEventTable().
//	    Add("instanceReady", "function (ev) { alert('Loaded: ' + ev.editor.name); }")
type EventTable struct {
	names    []string
	handlers map[string][]string
}

// NewEventTable returns an empty table.
func NewEventTable() *EventTable {
	return &EventTable{handlers: make(map[string][]string)}
}

// Add registers code for event. Adding the same code twice has no effect.
func (t *EventTable) Add(event, code string) *EventTable {
	if t.handlers == nil {
		t.handlers = make(map[string][]string)
	}
	list, ok := t.handlers[event]
	if !ok {
		t.names = append(t.names, event)
	}
	for _, existing := range list {
		if existing == code {
			return t
		}
	}
	t.handlers[event] = append(list, code)
	return t
}

// Clear removes the handlers of one event. The event stays known with no
// handlers, which is skipped on output.
func (t *EventTable) Clear(event string) {
	if t == nil {
		return
	}
	if _, ok := t.handlers[event]; ok {
		t.handlers[event] = nil
	}
}

// ClearAll removes every event.
func (t *EventTable) ClearAll() {
	if t == nil {
		return
	}
	t.names = nil
	t.handlers = make(map[string][]string)
}

// Events returns the event names in registration order.
func (t *EventTable) Events() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Handlers returns the code registered for event.
func (t *EventTable) Handlers(event string) []string {
	if t == nil {
		return nil
	}
	list := t.handlers[event]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len returns the total number of handlers.
func (t *EventTable) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, list := range t.handlers {
		n += len(list)
	}
	return n
}

// Clone returns a table with its own storage.
func (t *EventTable) Clone() *EventTable {
	if t == nil {
		return nil
	}
	out := NewEventTable()
	for _, name := range t.names {
		out.names = append(out.names, name)
		out.handlers[name] = append([]string(nil), t.handlers[name]...)
	}
	return out
}

// members builds the value stored under the "on" option.
func (t *EventTable) members() jsenc.Members {
	if t == nil {
		return nil
	}
	var on jsenc.Members
	for _, name := range t.names {
		list := t.handlers[name]
		switch len(list) {
		case 0:
			continue
		case 1:
			on = append(on, jsenc.Member{Key: name, Value: jsenc.Raw(list[0])})
		default:
			on = append(on, jsenc.Member{Key: name, Value: jsenc.Raw(chainHandlers(list))})
		}
	}
	return on
}

// chainHandlers wraps several handlers in one function calling each in turn.
func chainHandlers(list []string) string {
	var sb strings.Builder
	sb.WriteString("function (ev){")
	for _, code := range list {
		sb.WriteString("(")
		sb.WriteString(code)
		sb.WriteString(")(ev);")
	}
	sb.WriteString("}")
	return sb.String()
}

// globalRegistrations returns the CKEDITOR.on calls for every handler in t
// that has not been emitted on this page yet.
func (t *EventTable) globalRegistrations(page *Page) string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	for _, name := range t.names {
		for _, code := range t.handlers[name] {
			if page != nil && !page.markGlobalEvent(name, code) {
				continue
			}
			if code != "" {
				sb.WriteString("\n")
			}
			sb.WriteString("CKEDITOR.on('")
			sb.WriteString(quoteJS(name))
			sb.WriteString("', ")
			sb.WriteString(code)
			sb.WriteString(");")
		}
	}
	return sb.String()
}
