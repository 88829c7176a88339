package cked

import (
	"github.com/pthm/cked/lib/jsenc"
)

// EventsKey is the reserved option under which WithEvents stores event
// handlers. Anything set under this key directly is replaced by WithEvents.
const EventsKey = "on"

// Config is the set of options for one editor instance or for a whole scope.
//
// Keys are unique; setting an existing key replaces its value in place.
// Keys keep their insertion order, which is the order they appear in the
// generated literal.
//
//	cfg := cked.NewConfig().
//	    Put("toolbar", "Basic").
//	    Put("width", 500).
//	    Set("uiColor", jsenc.Text("#AADC6E"))
//
// A nil *Config means "no configuration" and is distinct from an empty one.
// Read methods and Merge accept a nil receiver.
type Config struct {
	keys   []string
	values map[string]Value
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{values: make(map[string]Value)}
}

// Set inserts or replaces an option.
func (c *Config) Set(key string, v Value) *Config {
	if c.values == nil {
		c.values = make(map[string]Value)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	if v == nil {
		v = jsenc.Null
	}
	c.values[key] = v
	return c
}

// Put converts a plain Go value with jsenc.ValueOf and sets it.
func (c *Config) Put(key string, v any) *Config {
	return c.Set(key, jsenc.ValueOf(v))
}

// Get returns the value for key.
func (c *Config) Get(key string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[key]
	return v, ok
}

// Remove deletes key. Removing a missing key does nothing.
func (c *Config) Remove(key string) {
	if c == nil {
		return
	}
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// IsEmpty reports whether the configuration has no options.
func (c *Config) IsEmpty() bool {
	return c == nil || len(c.keys) == 0
}

// Len returns the number of options.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the option names in order.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Entries returns a copy of the options in order.
func (c *Config) Entries() []Member {
	if c == nil {
		return nil
	}
	out := make([]Member, len(c.keys))
	for i, k := range c.keys {
		out[i] = Member{Key: k, Value: c.values[k]}
	}
	return out
}

// Clone returns a configuration with its own storage. Values are shared,
// they are never modified after construction.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{
		keys:   make([]string, len(c.keys)),
		values: make(map[string]Value, len(c.values)),
	}
	copy(out.keys, c.keys)
	for k, v := range c.values {
		out.values[k] = v
	}
	return out
}

// Merge copies every option of other into c, replacing existing values, and
// returns c. other is never modified. Merge does not clone c; call
// Clone first when c is shared:
//
//	effective := global.Clone().Merge(instance)
//
// A nil c has nothing to merge into, so Merge returns a clone of other.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if c == nil {
		return other.Clone()
	}
	for _, k := range other.keys {
		c.Set(k, other.values[k])
	}
	return c
}

// WithEvents returns a clone of c with the handlers from events stored under
// the "on" option. Events with no handlers are skipped. An event with one
// handler maps to that handler's code; several handlers are wrapped in one
// function that calls each in turn:
//
//	function (ev){(h1)(ev);(h2)(ev);}
//
// c itself is not modified. A nil c is treated as empty.
func (c *Config) WithEvents(events *EventTable) *Config {
	out := c.Clone()
	if out == nil {
		out = NewConfig()
	}
	if on := events.members(); len(on) > 0 {
		out.Set(EventsKey, on)
	}
	return out
}

// Value returns the configuration as an ordered object value.
func (c *Config) Value() Value {
	return jsenc.Members(c.Entries())
}

// Script returns the configuration as a script object literal.
func (c *Config) Script() string {
	return jsenc.Encode(c.Value())
}

// String implements fmt.Stringer.
func (c *Config) String() string {
	return c.Script()
}

// Resolve combines a scope-wide configuration with an instance one.
//
// With neither present the result is nil and the creation call gets no
// configuration argument. With only one present it is returned as is. With
// both, the global configuration is cloned and the instance options are
// merged on top, so instance values win and global is left untouched.
func Resolve(global, instance *Config) *Config {
	switch {
	case global == nil && instance == nil:
		return nil
	case global == nil:
		return instance
	case instance == nil:
		return global
	}
	return global.Clone().Merge(instance)
}
