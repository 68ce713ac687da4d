package inspect

import (
	"regexp"
	"strings"

	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// Inspection is the outcome of inspecting one file.
type Inspection struct {
	IsComponent bool
	Name        string
	UsesOnPush  bool
	UsesSignals bool
	Findings    []checksignals.Finding
}

// Inspector applies a validated rule set to file contents.
// Inspector holds no mutable state and is safe for concurrent use.
type Inspector struct {
	rules Rules
	name  *regexp.Regexp
}

// New validates rules and returns an Inspector for them.
func New(rules Rules) (*Inspector, error) {
	re, err := rules.Validate()
	if err != nil {
		return nil, err
	}
	rules.SignalAPIs = append([]string(nil), rules.SignalAPIs...)
	return &Inspector{rules: rules, name: re}, nil
}

// Rules returns a copy of the rules the Inspector was built with.
func (i *Inspector) Rules() Rules {
	r := i.rules
	r.SignalAPIs = append([]string(nil), i.rules.SignalAPIs...)
	return r
}

// Matches reports whether path ends with the configured extension.
// Files that do not match must not be read.
func (i *Inspector) Matches(path string) bool {
	return strings.HasSuffix(path, i.rules.Extension)
}

// Inspect runs the component checks on content. path is only used to label
// findings. A file without the component marker yields a zero Inspection.
func (i *Inspector) Inspect(path string, content []byte) Inspection {
	text := string(content)
	if !strings.Contains(text, i.rules.ComponentMarker) {
		return Inspection{}
	}

	result := Inspection{
		IsComponent: true,
		Name:        i.componentName(text),
		UsesOnPush:  strings.Contains(text, i.rules.OnPushMarker),
		UsesSignals: i.usesSignals(text),
	}

	if !result.UsesOnPush {
		result.Findings = append(result.Findings, checksignals.Finding{
			Rule:      checksignals.RuleOnPush,
			Severity:  checksignals.SeverityWarning,
			Component: result.Name,
			Path:      path,
		})
	}
	if !result.UsesSignals {
		result.Findings = append(result.Findings, checksignals.Finding{
			Rule:      checksignals.RuleSignals,
			Severity:  checksignals.SeverityInfo,
			Component: result.Name,
			Path:      path,
		})
	}

	return result
}

func (i *Inspector) componentName(text string) string {
	m := i.name.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return checksignals.PlaceholderComponentName
	}
	return m[1]
}

func (i *Inspector) usesSignals(text string) bool {
	for _, api := range i.rules.SignalAPIs {
		if strings.Contains(text, api) {
			return true
		}
	}
	return false
}
