package renderer

import (
	"math"
	"testing"

	"github.com/user/videoout/pkg/mocks"
)

type adjustCase struct {
	name   string
	set    func(r *Renderer, v float64) bool
	get    func(r *Renderer) float64
	hook   string
	enable func(b *mocks.HookedBackend, f func(float64) bool)
}

var adjustCases = []adjustCase{
	{
		name: "brightness",
		set:  (*Renderer).SetBrightness,
		get:  (*Renderer).Brightness,
		hook: "OnChangingBrightness",
		enable: func(b *mocks.HookedBackend, f func(float64) bool) {
			b.OnChangingBrightnessFunc = f
		},
	},
	{
		name: "contrast",
		set:  (*Renderer).SetContrast,
		get:  (*Renderer).Contrast,
		hook: "OnChangingContrast",
		enable: func(b *mocks.HookedBackend, f func(float64) bool) {
			b.OnChangingContrastFunc = f
		},
	},
	{
		name: "hue",
		set:  (*Renderer).SetHue,
		get:  (*Renderer).Hue,
		hook: "OnChangingHue",
		enable: func(b *mocks.HookedBackend, f func(float64) bool) {
			b.OnChangingHueFunc = f
		},
	},
	{
		name: "saturation",
		set:  (*Renderer).SetSaturation,
		get:  (*Renderer).Saturation,
		hook: "OnChangingSaturation",
		enable: func(b *mocks.HookedBackend, f func(float64) bool) {
			b.OnChangingSaturationFunc = f
		},
	},
}

func TestColorAdjustment_AcceptedByBackend(t *testing.T) {
	for _, tc := range adjustCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &mocks.HookedBackend{}
			tc.enable(b, func(float64) bool { return true })
			r := New(b, nil)

			if !tc.set(r, 0.4) {
				t.Fatal("expected success")
			}
			if tc.get(r) != 0.4 {
				t.Errorf("expected 0.4, got %v", tc.get(r))
			}
		})
	}
}

func TestColorAdjustment_ClampedBeforeHook(t *testing.T) {
	for _, tc := range adjustCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &mocks.HookedBackend{}
			tc.enable(b, func(float64) bool { return true })
			r := New(b, nil)

			tc.set(r, 2.0)
			tc.set(r, -7)

			calls := b.CallsTo(tc.hook)
			if len(calls) != 2 || calls[0].Value != 1 || calls[1].Value != -1 {
				t.Errorf("expected hook values [1 -1], got %+v", calls)
			}
			if tc.get(r) != -1 {
				t.Errorf("expected -1, got %v", tc.get(r))
			}
		})
	}
}

func TestColorAdjustment_RejectedByBackend(t *testing.T) {
	for _, tc := range adjustCases {
		t.Run(tc.name, func(t *testing.T) {
			accept := true
			b := &mocks.HookedBackend{}
			tc.enable(b, func(float64) bool { return accept })
			r := New(b, nil)
			tc.set(r, 0.25)

			accept = false
			if tc.set(r, 2.0) {
				t.Error("expected failure")
			}
			if tc.get(r) != 0.25 {
				t.Errorf("expected prior value 0.25, got %v", tc.get(r))
			}
			calls := b.CallsTo(tc.hook)
			if calls[len(calls)-1].Value != 1 {
				t.Errorf("expected clamped value offered to the hook, got %v", calls[len(calls)-1].Value)
			}
		})
	}
}

func TestColorAdjustment_DefaultHookRefuses(t *testing.T) {
	for _, tc := range adjustCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(&mocks.HookedBackend{}, nil)
			if tc.set(r, 0.5) {
				t.Error("expected failure without an enabled hook")
			}
			if tc.get(r) != 0 {
				t.Errorf("expected 0, got %v", tc.get(r))
			}
		})
	}
}

func TestColorAdjustment_NoHookImplemented(t *testing.T) {
	for _, tc := range adjustCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(&mocks.Backend{}, nil)
			if tc.set(r, 0.5) {
				t.Error("expected failure for a backend without the capability")
			}
			if tc.get(r) != 0 {
				t.Errorf("expected 0, got %v", tc.get(r))
			}
		})
	}
}

func TestColorAdjustment_NaN(t *testing.T) {
	b := &mocks.HookedBackend{OnChangingHueFunc: func(float64) bool { return true }}
	r := New(b, nil)

	if r.SetHue(math.NaN()) {
		t.Error("expected NaN to be rejected")
	}
	if len(b.CallsTo("OnChangingHue")) != 0 {
		t.Error("expected hook not to be called for NaN")
	}
}
