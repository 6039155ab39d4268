package node

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Converter maps a Go type onto nodes and back. Decode returns a value
// of the registered type.
type Converter struct {
	Encode func(v any) (*Node, error)
	Decode func(n *Node) (any, error)
}

var (
	convMu     sync.RWMutex
	converters = map[reflect.Type]Converter{}
)

// RegisterConverter installs a converter for t, replacing any previous
// registration.
func RegisterConverter(t reflect.Type, c Converter) {
	convMu.Lock()
	defer convMu.Unlock()
	converters[t] = c
}

// Register installs a typed converter for T.
func Register[T any](encode func(T) (*Node, error), decode func(*Node) (T, error)) {
	RegisterConverter(reflect.TypeFor[T](), Converter{
		Encode: func(v any) (*Node, error) {
			return encode(v.(T))
		},
		Decode: func(n *Node) (any, error) {
			return decode(n)
		},
	})
}

func converterFor(t reflect.Type) (Converter, bool) {
	convMu.RLock()
	defer convMu.RUnlock()
	c, ok := converters[t]
	return c, ok
}

// Encode converts a Go value to a node via the registry. A *Node passes
// through unchanged; nil becomes a null node.
func Encode(v any) (*Node, error) {
	if v == nil {
		return New(), nil
	}
	if n, ok := v.(*Node); ok {
		return n, nil
	}
	c, ok := converterFor(reflect.TypeOf(v))
	if !ok {
		return nil, fmt.Errorf("%w: no converter for %T", ErrConversion, v)
	}
	return c.Encode(v)
}

// As decodes a node into T via the registry.
func As[T any](n *Node) (T, error) {
	var zero T
	c, ok := converterFor(reflect.TypeFor[T]())
	if !ok {
		return zero, fmt.Errorf("%w: no converter for %v", ErrConversion, reflect.TypeFor[T]())
	}
	v, err := c.Decode(n)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Set assigns a converted value through the handle, rebinding every
// alias of n.
func (n *Node) Set(v any) error {
	rhs, err := Encode(v)
	if err != nil {
		return err
	}
	n.Assign(rhs)
	return nil
}

func scalarOf(n *Node) (string, error) {
	if !n.IsScalar() {
		return "", fmt.Errorf("%w: %s node is not a scalar", ErrConversion, n.Type())
	}
	return n.Scalar(), nil
}

func init() {
	Register(
		func(v string) (*Node, error) {
			return FromScalar(v), nil
		},
		func(n *Node) (string, error) {
			if n.IsNull() {
				return "null", nil
			}
			return scalarOf(n)
		})

	Register(
		func(v int) (*Node, error) {
			return FromScalar(strconv.Itoa(v)), nil
		},
		func(n *Node) (int, error) {
			s, err := scalarOf(n)
			if err != nil {
				return 0, err
			}
			i, err := strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("%w: %q is not an int", ErrConversion, s)
			}
			return i, nil
		})

	Register(
		func(v int64) (*Node, error) {
			return FromScalar(strconv.FormatInt(v, 10)), nil
		},
		func(n *Node) (int64, error) {
			s, err := scalarOf(n)
			if err != nil {
				return 0, err
			}
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q is not an int64", ErrConversion, s)
			}
			return i, nil
		})

	Register(
		func(v float64) (*Node, error) {
			return FromScalar(strconv.FormatFloat(v, 'g', -1, 64)), nil
		},
		func(n *Node) (float64, error) {
			s, err := scalarOf(n)
			if err != nil {
				return 0, err
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q is not a float", ErrConversion, s)
			}
			return f, nil
		})

	Register(
		func(v bool) (*Node, error) {
			if v {
				return FromScalar("true"), nil
			}
			return FromScalar("false"), nil
		},
		func(n *Node) (bool, error) {
			s, err := scalarOf(n)
			if err != nil {
				return false, err
			}
			switch s {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return false, fmt.Errorf("%w: %q is not a bool", ErrConversion, s)
		})
}
