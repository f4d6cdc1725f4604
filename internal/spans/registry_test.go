package spans_test

import (
	"reflect"
	"testing"

	"lantern/internal/spans"
)

func TestRegistryNestedChain(t *testing.T) {
	registry := spans.NewRegistry()

	outer := registry.Start("outer", "")
	inner := registry.Start("inner", outer.ID)

	got := registry.Chain(inner.ID)
	want := []string{"outer", "inner"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Chain(inner) = %v, want %v", got, want)
	}

	if got := registry.Chain(outer.ID); !reflect.DeepEqual(got, []string{"outer"}) {
		t.Fatalf("Chain(outer) = %v", got)
	}
}

func TestRegistryCurrentChain(t *testing.T) {
	registry := spans.NewRegistry()
	if chain := registry.CurrentChain(); chain != nil {
		t.Fatalf("empty registry has no current chain, got %v", chain)
	}

	registry.Start("outer", "")
	registry.Start("inner", "")

	want := []string{"outer", "inner"}
	if got := registry.CurrentChain(); !reflect.DeepEqual(got, want) {
		t.Fatalf("CurrentChain() = %v, want %v", got, want)
	}
}

func TestRegistryEndRestoresParent(t *testing.T) {
	registry := spans.NewRegistry()
	outer := registry.Start("outer", "")
	inner := registry.Start("inner", outer.ID)

	registry.End(inner.ID)

	if got := registry.CurrentChain(); !reflect.DeepEqual(got, []string{"outer"}) {
		t.Fatalf("ending the leaf should re-activate its parent, got %v", got)
	}
	if got := registry.Chain(inner.ID); got != nil {
		t.Fatalf("ended span should be unresolvable, got %v", got)
	}

	registry.End(outer.ID)
	if got := registry.CurrentChain(); got != nil {
		t.Fatalf("ending the root should leave no current span, got %v", got)
	}
}

func TestRegistryEndUnknownIsNoop(t *testing.T) {
	registry := spans.NewRegistry()
	registry.Start("outer", "")
	registry.End("no-such-id")

	if got := registry.CurrentChain(); !reflect.DeepEqual(got, []string{"outer"}) {
		t.Fatalf("unknown end must not disturb the current span, got %v", got)
	}
}

func TestRegistryUnknownParentNestsUnderCurrent(t *testing.T) {
	registry := spans.NewRegistry()
	registry.Start("outer", "")
	child := registry.Start("child", "missing-parent")

	want := []string{"outer", "child"}
	if got := registry.Chain(child.ID); !reflect.DeepEqual(got, want) {
		t.Fatalf("Chain(child) = %v, want %v", got, want)
	}
}

func TestRegistryDistinctIDs(t *testing.T) {
	registry := spans.NewRegistry()
	a := registry.Start("a", "")
	b := registry.Start("b", "")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("span ids must be unique and non-empty: %q, %q", a.ID, b.ID)
	}
}
