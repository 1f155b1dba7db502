package crater

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the variant tag of a BuildResult.
type Kind string

const (
	KindSuccess     Kind = "Success"
	KindTestFail    Kind = "TestFail"
	KindTestSkipped Kind = "TestSkipped"
	KindBuildFail   Kind = "BuildFail"
)

// AllKinds returns every result kind.
func AllKinds() []Kind {
	return []Kind{KindSuccess, KindTestFail, KindTestSkipped, KindBuildFail}
}

func (k Kind) valid() bool {
	switch k {
	case KindSuccess, KindTestFail, KindTestSkipped, KindBuildFail:
		return true
	default:
		return false
	}
}

// BuildResult is the classified outcome of one crate.
// Output holds the report file content and is empty for KindSuccess.
type BuildResult struct {
	Kind   Kind
	Output string
}

// Success returns a result with no payload.
func Success() BuildResult {
	return BuildResult{Kind: KindSuccess}
}

// TestFail returns a TestFail result carrying output.
func TestFail(output string) BuildResult {
	return BuildResult{Kind: KindTestFail, Output: output}
}

// TestSkipped returns a TestSkipped result carrying output.
func TestSkipped(output string) BuildResult {
	return BuildResult{Kind: KindTestSkipped, Output: output}
}

// BuildFail returns a BuildFail result carrying output.
func BuildFail(output string) BuildResult {
	return BuildResult{Kind: KindBuildFail, Output: output}
}

// newResult builds the variant for kind.
func newResult(kind Kind, output string) (BuildResult, error) {
	switch kind {
	case KindTestFail:
		return TestFail(output), nil
	case KindTestSkipped:
		return TestSkipped(output), nil
	case KindBuildFail:
		return BuildFail(output), nil
	case KindSuccess:
		return BuildResult{}, ErrUnreachable
	default:
		return BuildResult{}, fmt.Errorf("unknown result kind %q", kind)
	}
}

type outputPayload struct {
	Output string `json:"output"`
}

// MarshalJSON encodes the result as an object keyed by its variant name:
//
//	{"Success":{}}
//	{"TestFail":{"output":"..."}}
func (r BuildResult) MarshalJSON() ([]byte, error) {
	if !r.Kind.valid() {
		return nil, fmt.Errorf("unknown result kind %q", r.Kind)
	}

	if r.Kind == KindSuccess {
		return json.Marshal(map[Kind]struct{}{KindSuccess: {}})
	}
	return json.Marshal(map[Kind]outputPayload{r.Kind: {Output: r.Output}})
}

// UnmarshalJSON decodes the object form written by MarshalJSON.
// The bare string "Success" is accepted as well.
func (r *BuildResult) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var tag Kind
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return err
		}
		if tag != KindSuccess {
			return fmt.Errorf("result %q requires an output payload", tag)
		}
		*r = Success()
		return nil
	}

	var raw map[Kind]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("result must have exactly one variant, got %d", len(raw))
	}

	for kind, payload := range raw {
		if !kind.valid() {
			return fmt.Errorf("unknown result kind %q", kind)
		}
		if kind == KindSuccess {
			*r = Success()
			return nil
		}

		var p outputPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decoding %s payload: %w", kind, err)
		}
		*r = BuildResult{Kind: kind, Output: p.Output}
	}
	return nil
}
