package bendybutt

import "fmt"

const (
	// DefaultMaxMessageSize is the Bendy Butt limit on encoded message size.
	DefaultMaxMessageSize = 8192
	// DefaultMaxDepth bounds container nesting while decoding. Well-formed
	// messages nest four deep.
	DefaultMaxDepth = 8
)

// Options bounds encoding and decoding. The zero value uses the defaults.
type Options struct {
	MaxMessageSize int
	MaxDepth       int
}

// Validate rejects negative limits.
func (o Options) Validate() error {
	if o.MaxMessageSize < 0 {
		return newError(KindConfig, "BB-OPT-001", "", fmt.Sprintf("negative MaxMessageSize %d", o.MaxMessageSize))
	}
	if o.MaxDepth < 0 {
		return newError(KindConfig, "BB-OPT-002", "", fmt.Sprintf("negative MaxDepth %d", o.MaxDepth))
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.MaxMessageSize == 0 {
		o.MaxMessageSize = DefaultMaxMessageSize
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

func (o Options) resolve() (Options, error) {
	if err := o.Validate(); err != nil {
		return o, err
	}
	return o.withDefaults(), nil
}
