package guid

import "testing"

// TestNewShape verifies the generated GUID has the canonical v4 layout and
// that consecutive calls differ.
func TestNewShape(t *testing.T) {
	a, b := New(), New()
	if len(a) != 36 {
		t.Fatalf("unexpected length %d for %q", len(a), a)
	}
	for _, i := range []int{8, 13, 18, 23} {
		if a[i] != '-' {
			t.Fatalf("missing separator at %d in %q", i, a)
		}
	}
	if a == b {
		t.Fatalf("two GUIDs collided: %q", a)
	}
}
