package inspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// Rules configures what the Inspector looks for.
type Rules struct {
	// Extension is the path suffix a file needs to be inspected.
	Extension string
	// ComponentMarker marks a file as a component declaration.
	ComponentMarker string
	// NamePattern extracts the component name from its first capture group.
	NamePattern string
	// OnPushMarker is the literal that counts as OnPush being enabled.
	OnPushMarker string
	// SignalAPIs are the substrings that count as Signals usage.
	SignalAPIs []string
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		Extension:       checksignals.DefaultExtension,
		ComponentMarker: checksignals.DefaultComponentMarker,
		NamePattern:     checksignals.DefaultNamePattern,
		OnPushMarker:    checksignals.DefaultOnPushMarker,
		SignalAPIs:      checksignals.DefaultSignalAPIs(),
	}
}

// Validate checks that every rule is usable and compiles the name pattern.
func (r Rules) Validate() (*regexp.Regexp, error) {
	if r.Extension == "" {
		return nil, fmt.Errorf("%w: extension must not be empty", checksignals.ErrInvalidConfig)
	}
	if r.ComponentMarker == "" {
		return nil, fmt.Errorf("%w: component marker must not be empty", checksignals.ErrInvalidConfig)
	}
	if r.OnPushMarker == "" {
		return nil, fmt.Errorf("%w: onpush marker must not be empty", checksignals.ErrInvalidConfig)
	}
	if len(r.SignalAPIs) == 0 {
		return nil, fmt.Errorf("%w: at least one signal API is required", checksignals.ErrInvalidConfig)
	}
	for i, api := range r.SignalAPIs {
		if strings.TrimSpace(api) == "" {
			return nil, fmt.Errorf("%w: signal API #%d is empty", checksignals.ErrInvalidConfig, i+1)
		}
	}

	re, err := regexp.Compile(r.NamePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: name pattern %q: %v", checksignals.ErrInvalidConfig, r.NamePattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%w: name pattern %q needs a capture group", checksignals.ErrInvalidConfig, r.NamePattern)
	}
	return re, nil
}
