package builder

import (
	"reflect"
	"testing"
)

func TestAttributesLastWriteWins(t *testing.T) {
	attrs := Attributes(func(b *AttributeSetBuilder) {
		b.Add("id", "a")
		b.Add("title", "t")
		b.Add("id", "b")
		b.AddIf(false, "role", "button")
		b.AddAll(map[string]string{"tabindex": "0"})
	})
	want := map[string]string{"id": "b", "title": "t", "tabindex": "0"}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("Attributes() = %v, want %v", attrs, want)
	}
}

func TestAttributesSnapshotIsDetached(t *testing.T) {
	var leaked *AttributeSetBuilder
	attrs := Attributes(func(b *AttributeSetBuilder) {
		b.Add("id", "a")
		leaked = b
	})
	leaked.Add("id", "changed")
	if attrs["id"] != "a" {
		t.Errorf("snapshot mutated through builder: %v", attrs)
	}
}

func TestClassesDeduplicateInOrder(t *testing.T) {
	set := Classes(func(b *ClassSetBuilder) {
		b.Add("btn")
		b.AddSpaced("btn-primary  btn")
		b.AddIf(true, "active")
		b.AddIf(false, "disabled")
		b.Add("")
	})
	want := []string{"btn", "btn-primary", "active"}
	if !reflect.DeepEqual(set.Names(), want) {
		t.Errorf("Names() = %v, want %v", set.Names(), want)
	}
	if !set.Has("active") || set.Has("disabled") {
		t.Errorf("Has() mismatch for %v", set.Names())
	}
	if set.String() != "btn btn-primary active" {
		t.Errorf("String() = %q", set.String())
	}
	if m := set.Map(); len(m) != 3 || !m["btn"] {
		t.Errorf("Map() = %v", m)
	}
}
