package plugin

import "testing"

func TestDefaultDesc(t *testing.T) {
	d := DefaultDesc()
	if d.Name != "[unknown]" {
		t.Errorf("default name %q", d.Name)
	}
	if d.Category != "General" {
		t.Errorf("default category %q", d.Category)
	}
	if d.Version != "0.1" {
		t.Errorf("default version %q", d.Version)
	}
}

func TestDescBuilder(t *testing.T) {
	d := DefaultDesc().
		WithID(3).
		WithUUID("0e5c8a11-2b4f-4c2e-8d3a-7f91c6b0e4d2").
		WithName("Sine").
		WithCategory("Generator").
		WithDescription("sine wave generator").
		WithDeveloper("acme").
		WithExtra("stage", "beta")

	if d.ID != 3 || d.Name != "Sine" || d.Category != "Generator" {
		t.Errorf("builder lost fields: %+v", d)
	}
	if d.Extra["stage"] != "beta" {
		t.Errorf("extra map %v", d.Extra)
	}
	// Value receivers: the base descriptor is untouched.
	if base := DefaultDesc(); base.Name != "[unknown]" {
		t.Errorf("builder mutated the default: %q", base.Name)
	}
}
