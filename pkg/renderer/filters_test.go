package renderer

import (
	"testing"

	"github.com/user/videoout/pkg/mocks"
)

func TestOSDFilter_TransferOnReplace(t *testing.T) {
	r := New(&mocks.Backend{}, nil)
	f1 := &mocks.Filter{FilterName: "f1"}
	f2 := &mocks.Filter{FilterName: "f2"}

	if old := r.SetOSDFilter(f1); old != nil {
		t.Errorf("expected no previous filter, got %v", old)
	}
	if old := r.SetOSDFilter(f2); old != f1 {
		t.Errorf("expected f1 returned, got %v", old)
	}
	if r.OSDFilter() != f2 {
		t.Errorf("expected f2 installed, got %v", r.OSDFilter())
	}
	if old := r.SetOSDFilter(nil); old != f2 {
		t.Errorf("expected f2 returned on disable, got %v", old)
	}
	if r.OSDFilter() != nil {
		t.Error("expected OSD disabled")
	}
}

func TestSubtitleFilter_TransferOnReplace(t *testing.T) {
	r := New(&mocks.Backend{}, nil)
	s1 := &mocks.Filter{FilterName: "s1"}
	s2 := &mocks.Filter{FilterName: "s2"}

	r.SetSubtitleFilter(s1)
	if old := r.SetSubtitleFilter(s2); old != s1 {
		t.Errorf("expected s1 returned, got %v", old)
	}
	if r.SubtitleFilter() != s2 {
		t.Errorf("expected s2 installed, got %v", r.SubtitleFilter())
	}
}

func TestDefaultEventFilter(t *testing.T) {
	r := New(&mocks.Backend{}, nil)

	r.EnableDefaultEventFilter(false)
	if r.IsDefaultEventFilterEnabled() {
		t.Error("expected disabled")
	}
	r.EnableDefaultEventFilter(true)
	if !r.IsDefaultEventFilterEnabled() {
		t.Error("expected enabled")
	}
}
