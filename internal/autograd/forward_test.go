package autograd

import (
	"reflect"
	"testing"
)

func TestFloatNormalize(t *testing.T) {
	cases := []struct {
		in, want any
	}{
		{3, 3.0},
		{int64(4), 4.0},
		{float32(1.5), 1.5},
		{2.5, 2.5},
		{[]int{1, 2}, []float64{1, 2}},
		{[]float64{1, 2}, []float64{1, 2}},
		{[]any{1, []int{2}}, []any{1.0, []float64{2}}},
		{map[string]any{"a": 1}, map[string]any{"a": 1.0}},
		{"opaque", "opaque"},
	}
	for _, c := range cases {
		if got := floatNormalize(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("floatNormalize(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTrace_ArgnumOutOfRange(t *testing.T) {
	fn := func(args ...any) any { return args[0] }
	if _, _, _, err := Trace(fn, 1, 2.0); err == nil {
		t.Fatal("expected error for out-of-range argnum")
	}
	if _, _, _, err := Trace(fn, -1, 2.0); err == nil {
		t.Fatal("expected error for negative argnum")
	}
}

func TestTrace_SeedIsRootAndNormalized(t *testing.T) {
	fn := func(args ...any) any { return args[0] }
	seed, result, tape, err := Trace(fn, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if seed.payload != 3.0 {
		t.Fatalf("seed payload = %v (%T), want float64 3", seed.payload, seed.payload)
	}
	if tape.nodes[0] != seed.nodeOn(tape) {
		t.Fatal("seed must be the first node on the tape")
	}
	if result != any(seed) {
		t.Fatal("an identity function must return the seed itself")
	}
}

func TestTrace_SubstitutesOnlyArgnum(t *testing.T) {
	var got []any
	fn := func(args ...any) any {
		got = append([]any(nil), args...)
		return 0.0
	}
	_, _, _, err := Trace(fn, 1, "left", 2.0, "right")
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != "left" || got[2] != "right" {
		t.Fatal("non-traced arguments must pass through unchanged")
	}
	if !isBoxed(got[1]) {
		t.Fatal("traced argument must be boxed")
	}
}

func TestTrace_MergeJoinsAllOpenTapes(t *testing.T) {
	outer1 := NewTape()
	outer2 := NewTape()
	closed := NewTape()
	prior := newRoot(2.0, outer1)
	prior.boxOn(outer2, 0)
	prior.boxOn(closed, 0)
	closed.close()

	var traced *Box
	fn := func(args ...any) any {
		traced = args[0].(*Box)
		return args[0]
	}
	seed, _, tape, err := Trace(fn, 0, prior)
	if err != nil {
		t.Fatal(err)
	}
	if traced == seed {
		t.Fatal("a pre-boxed argument must be substituted by a merged duplicate")
	}
	if traced.nodeOn(tape) == nil {
		t.Fatal("duplicate must join the fresh tape")
	}
	if traced.nodeOn(outer1) == nil || traced.nodeOn(outer2) == nil {
		t.Fatal("duplicate must join every open pre-existing tape")
	}
	if traced.nodeOn(closed) != nil {
		t.Fatal("duplicate must not join closed tapes")
	}
	if traced.nodeOn(tape).parents[0] != seed.nodeOn(tape) {
		t.Fatal("on the fresh tape the duplicate's parent is the seed root")
	}
	if traced.nodeOn(outer1).parents[0] != prior.nodeOn(outer1) {
		t.Fatal("on a pre-existing tape the duplicate's parent is the prior node")
	}
}
