package cked

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pthm/cked/lib/jsenc"
	"gopkg.in/yaml.v3"
)

// RawTag marks a YAML scalar as raw script source:
//
//	on:
//	  instanceReady: !raw function (ev) { ev.editor.focus(); }
const RawTag = "!raw"

// Profile is a reusable editor setup loaded from YAML:
//
//	basePath: /ckeditor/
//	timestamp: B5GJ
//	config:
//	  toolbar: Basic
//	  width: 500
//	  removePlugins: [elementspath, resize]
//	events:
//	  instanceReady:
//	    - function (ev) { console.log(ev.editor.name); }
//	globalEvents:
//	  dialogDefinition:
//	    - function (ev) { }
//	params:
//	  "*":
//	    language: en
//
// Mapping keys keep their file order. Integers, floats, booleans and null
// keep their YAML types.
type Profile struct {
	BasePath     string
	Timestamp    string
	Config       *Config
	Events       *EventTable
	GlobalEvents *EventTable
	Params       map[string]map[string]string
}

// LoadProfile reads and parses a profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cked: reading profile: %w", err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseProfile parses a YAML profile.
func ParseProfile(data []byte) (*Profile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	p := &Profile{}
	if len(doc.Content) == 0 {
		return p, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", ErrInvalidProfile, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		var err error
		switch key.Value {
		case "basePath":
			err = node.Decode(&p.BasePath)
		case "timestamp":
			err = node.Decode(&p.Timestamp)
		case "config":
			p.Config, err = configFromNode(node)
		case "events":
			p.Events, err = eventsFromNode(node)
		case "globalEvents":
			p.GlobalEvents, err = eventsFromNode(node)
		case "params":
			err = node.Decode(&p.Params)
		default:
			err = fmt.Errorf("unknown key %q", key.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %v", ErrInvalidProfile, key.Line, key.Value, err)
		}
	}
	return p, nil
}

// ParseConfig parses a YAML mapping into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if len(doc.Content) == 0 {
		return NewConfig(), nil
	}
	cfg, err := configFromNode(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return cfg, nil
}

// Apply copies the profile's setup onto e. The profile's configuration is
// shared, not copied; editors never modify it.
func (p *Profile) Apply(e *Editor) *Editor {
	if p.BasePath != "" {
		e.BasePath(p.BasePath)
	}
	if p.Timestamp != "" {
		e.Timestamp(p.Timestamp)
	}
	if p.Config != nil {
		e.Config(p.Config)
	}
	if p.Events != nil {
		e.Events(p.Events)
	}
	if p.GlobalEvents != nil {
		e.GlobalEvents(p.GlobalEvents)
	}
	return e
}

// Page returns a Page preloaded with the profile's params.
func (p *Profile) Page() *Page {
	page := NewPage()
	for name, params := range p.Params {
		page.SetParams(name, params)
	}
	return page
}

func configFromNode(node *yaml.Node) (*Config, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return NewConfig(), nil
	}
	v, err := valueFromNode(node, 0)
	if err != nil {
		return nil, err
	}
	members, ok := v.(jsenc.Members)
	if !ok {
		return nil, fmt.Errorf("line %d: config must be a mapping", node.Line)
	}
	cfg := NewConfig()
	for _, m := range members {
		cfg.Set(m.Key, m.Value)
	}
	return cfg, nil
}

func valueFromNode(node *yaml.Node, depth int) (Value, error) {
	if depth > jsenc.DefaultMaxDepth {
		return nil, fmt.Errorf("line %d: %w", node.Line, jsenc.ErrTooDeep)
	}

	switch node.Kind {
	case yaml.AliasNode:
		return valueFromNode(node.Alias, depth+1)

	case yaml.MappingNode:
		members := make(jsenc.Members, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := valueFromNode(node.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			members = append(members, jsenc.Member{Key: node.Content[i].Value, Value: v})
		}
		return members, nil

	case yaml.SequenceNode:
		list := make(jsenc.List, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := valueFromNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil

	case yaml.ScalarNode:
		return scalarValue(node)
	}
	return nil, fmt.Errorf("line %d: unsupported node", node.Line)
}

func scalarValue(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case RawTag:
		return jsenc.Raw(node.Value), nil
	case "!!null":
		return jsenc.Null, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return jsenc.Bool(b), nil
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			// Out of int64 range.
			f, ferr := strconv.ParseFloat(node.Value, 64)
			if ferr != nil {
				return nil, err
			}
			return jsenc.Float(f), nil
		}
		return jsenc.Int(n), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return jsenc.Float(f), nil
	}
	return jsenc.Text(node.Value), nil
}

func eventsFromNode(node *yaml.Node) (*EventTable, error) {
	if node.Kind != yaml.MappingNode {
		if node.Tag == "!!null" {
			return NewEventTable(), nil
		}
		return nil, fmt.Errorf("line %d: events must be a mapping", node.Line)
	}

	events := NewEventTable()
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, handlers := node.Content[i].Value, node.Content[i+1]
		switch handlers.Kind {
		case yaml.ScalarNode:
			events.Add(name, handlers.Value)
		case yaml.SequenceNode:
			for _, h := range handlers.Content {
				events.Add(name, h.Value)
			}
		default:
			return nil, fmt.Errorf("line %d: handlers for %q must be a string or a list", handlers.Line, name)
		}
	}
	return events, nil
}
