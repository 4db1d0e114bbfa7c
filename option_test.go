package kit

import "testing"

func TestOptionSome(t *testing.T) {
	o := Some(42)
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Errorf("Some(42).Get() = (%d, %v), want (42, true)", v, ok)
	}
	if !o.IsSome() || o.IsNone() {
		t.Error("Some(42) should report IsSome and not IsNone")
	}
	if got := o.OrElse(7); got != 42 {
		t.Errorf("OrElse = %d, want 42", got)
	}
	if got := o.MustGet(); got != 42 {
		t.Errorf("MustGet = %d, want 42", got)
	}
}

func TestOptionNone(t *testing.T) {
	tests := []struct {
		name string
		o    Option[string]
	}{
		{"None", None[string]()},
		{"zero value", Option[string]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.o.IsSome() || !tt.o.IsNone() {
				t.Error("empty Option should report IsNone")
			}
			if _, ok := tt.o.Get(); ok {
				t.Error("Get on empty Option should return false")
			}
			if got := tt.o.OrElse("fallback"); got != "fallback" {
				t.Errorf("OrElse = %q, want %q", got, "fallback")
			}
		})
	}
}

func TestOptionSomeZeroValue(t *testing.T) {
	// A present zero value is distinct from absence.
	o := Some([]byte{})
	if o.IsNone() {
		t.Error("Some of an empty slice should be present")
	}
}

func TestOptionMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet on empty Option should panic")
		}
	}()
	None[int]().MustGet()
}

func TestInfinity(t *testing.T) {
	if !(Inf64 > 1e308) {
		t.Errorf("Inf64 = %v, want +Inf", Inf64)
	}
	if !(Inf32 > 3.4e38) {
		t.Errorf("Inf32 = %v, want +Inf", Inf32)
	}
}

func TestAliasesAreInterchangeable(t *testing.T) {
	var v Vector[U8] = []byte{1, 2, 3}
	var p Shared[I32] = new(int32)
	*p = 5
	var u Unique[F64] = new(float64)
	var w WStr = []uint16{'h', 'i'}
	var path Path = "a/b"

	if len(v) != 3 || *p != 5 || *u != 0 || len(w) != 2 || path != "a/b" {
		t.Error("aliases should behave as their underlying types")
	}
}
