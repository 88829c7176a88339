package cked

import (
	"fmt"

	"github.com/pthm/cked/lib/jsenc"
)

// snapshot kinds. Stored in tokens, so values must not change.
const (
	snapNull uint8 = iota
	snapText
	snapInt
	snapFloat
	snapBool
	snapObject
	snapMembers
	snapList
	snapRaw
)

// snapshotValue is the msgpack form of a Value. Objects store keys in Keys
// and values in Items at the same index.
type snapshotValue struct {
	Kind  uint8           `msgpack:"k"`
	Str   string          `msgpack:"s,omitempty"`
	Int   int64           `msgpack:"i,omitempty"`
	Float float64         `msgpack:"f,omitempty"`
	Bool  bool            `msgpack:"b,omitempty"`
	Keys  []string        `msgpack:"n,omitempty"`
	Items []snapshotValue `msgpack:"a,omitempty"`
}

type snapshotConfig struct {
	Version int           `msgpack:"v"`
	Options snapshotValue `msgpack:"o"`
}

const snapshotVersion = 1

// EncodeConfig stores cfg as a signed token, or an encrypted one when
// sensitive is true. Unsupported values are stored as null.
func EncodeConfig(enc *Encoder, cfg *Config, sensitive bool) (string, error) {
	snap := snapshotConfig{
		Version: snapshotVersion,
		Options: toSnapshot(cfg.Value(), 0),
	}
	token, err := enc.Encode(snap, sensitive)
	if err != nil {
		return "", wrapEncodingError(err)
	}
	return token, nil
}

// DecodeConfig reads a token written by EncodeConfig.
func DecodeConfig(enc *Encoder, token string, sensitive bool) (*Config, error) {
	var snap snapshotConfig
	if err := enc.Decode(token, sensitive, &snap); err != nil {
		return nil, wrapEncodingError(err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidSnapshot, snap.Version)
	}
	v, err := fromSnapshot(snap.Options, 0)
	if err != nil {
		return nil, err
	}
	members, ok := v.(jsenc.Members)
	if !ok {
		return nil, fmt.Errorf("%w: options are not an object", ErrInvalidSnapshot)
	}
	cfg := NewConfig()
	for _, m := range members {
		cfg.Set(m.Key, m.Value)
	}
	return cfg, nil
}

func toSnapshot(v Value, depth int) snapshotValue {
	if depth > jsenc.DefaultMaxDepth {
		return snapshotValue{Kind: snapNull}
	}
	switch x := v.(type) {
	case jsenc.Text:
		return snapshotValue{Kind: snapText, Str: string(x)}
	case jsenc.Raw:
		return snapshotValue{Kind: snapRaw, Str: string(x)}
	case jsenc.Number:
		if x.Kind == jsenc.KindInt {
			return snapshotValue{Kind: snapInt, Int: x.Int}
		}
		return snapshotValue{Kind: snapFloat, Float: x.Float}
	case jsenc.Bool:
		return snapshotValue{Kind: snapBool, Bool: bool(x)}
	case jsenc.Object:
		out := snapshotValue{Kind: snapObject}
		for k, e := range x {
			out.Keys = append(out.Keys, k)
			out.Items = append(out.Items, toSnapshot(e, depth+1))
		}
		return out
	case jsenc.Members:
		out := snapshotValue{Kind: snapMembers}
		for _, m := range x {
			out.Keys = append(out.Keys, m.Key)
			out.Items = append(out.Items, toSnapshot(m.Value, depth+1))
		}
		return out
	case jsenc.List:
		out := snapshotValue{Kind: snapList}
		for _, e := range x {
			out.Items = append(out.Items, toSnapshot(e, depth+1))
		}
		return out
	default:
		return snapshotValue{Kind: snapNull}
	}
}

func fromSnapshot(s snapshotValue, depth int) (Value, error) {
	if depth > jsenc.DefaultMaxDepth {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, jsenc.ErrTooDeep)
	}
	switch s.Kind {
	case snapNull:
		return jsenc.Null, nil
	case snapText:
		return jsenc.Text(s.Str), nil
	case snapRaw:
		return jsenc.Raw(s.Str), nil
	case snapInt:
		return jsenc.Int(s.Int), nil
	case snapFloat:
		return jsenc.Float(s.Float), nil
	case snapBool:
		return jsenc.Bool(s.Bool), nil
	case snapObject, snapMembers:
		if len(s.Keys) != len(s.Items) {
			return nil, fmt.Errorf("%w: %d keys for %d values", ErrInvalidSnapshot, len(s.Keys), len(s.Items))
		}
		members := make(jsenc.Members, len(s.Keys))
		for i, k := range s.Keys {
			v, err := fromSnapshot(s.Items[i], depth+1)
			if err != nil {
				return nil, err
			}
			members[i] = jsenc.Member{Key: k, Value: v}
		}
		if s.Kind == snapMembers {
			return members, nil
		}
		obj := make(jsenc.Object, len(members))
		for _, m := range members {
			obj[m.Key] = m.Value
		}
		return obj, nil
	case snapList:
		list := make(jsenc.List, len(s.Items))
		for i, item := range s.Items {
			v, err := fromSnapshot(item, depth+1)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidSnapshot, s.Kind)
	}
}
