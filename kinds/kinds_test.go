package kinds_test

import (
	"testing"

	"github.com/stateforward/go-act/kinds"
)

func TestKinds(t *testing.T) {
	if !kinds.IsKind(kinds.Mutable, kinds.Creator) {
		t.Errorf("Mutable should be a Creator")
	}
	if !kinds.IsKind(kinds.Bound, kinds.Creator) {
		t.Errorf("Bound should be a Creator")
	}
	if kinds.IsKind(kinds.Bound, kinds.Mutable) {
		t.Errorf("Bound should not be a Mutable")
	}
	if !kinds.IsKind(kinds.Store, kinds.Target) {
		t.Errorf("Store should be a Target")
	}
	if kinds.IsKind(kinds.Store, kinds.Creator) {
		t.Errorf("Store should not be a Creator")
	}
	if !kinds.IsKind(kinds.Mutable, kinds.Element) {
		t.Errorf("Mutable should be an Element")
	}
	if kinds.IsKind(kinds.Reducer, kinds.Target) {
		t.Errorf("Reducer should not be a Target")
	}
}

func TestBases(t *testing.T) {
	bases := kinds.Bases(kinds.Mutable)
	if bases[0] != kinds.Creator&0xff {
		t.Errorf("expected first base %d, got %d", kinds.Creator&0xff, bases[0])
	}
	if bases[1] != kinds.Element {
		t.Errorf("expected second base %d, got %d", kinds.Element, bases[1])
	}
	if bases[2] != 0 {
		t.Errorf("expected no third base, got %d", bases[2])
	}
}
