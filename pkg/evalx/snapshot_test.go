package evalx

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMarshalValueJSONSnapshots pins the serde wire form produced for each
// Value variant, mirroring go-dws's fixture_test.go use of
// snaps.MatchSnapshot for golden output.
func TestMarshalValueJSONSnapshots(t *testing.T) {
	cases := map[string]string{
		"int":     "41 + 1",
		"float":   "1.5 * 2.0",
		"string":  `str::to_uppercase("hi")`,
		"boolean": "3 > 2",
		"tuple":   "1, 2, 3",
		"empty":   "a = 1",
		"nested":  `(1, 2), (3, str::to_lowercase("X"))`,
	}

	ctx := NewContext()
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := Eval(src, ctx)
			if err != nil {
				t.Fatalf("Eval(%q): %v", src, err)
			}
			encoded, err := MarshalValueJSON(v)
			if err != nil {
				t.Fatalf("MarshalValueJSON: %v", err)
			}
			snaps.MatchSnapshot(t, name, encoded)
		})
	}
}
