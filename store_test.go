package sprig

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const storeYAML = `
animations:
  - name: walk
    frames: [walk_0, walk_1, walk_2]
    fps: 8
    wrap: loop
    iterations: -1
    completion: none
  - name: poof
    frames: [walk_2]
    completion: destroy
    delay: 0.5
  - name: bounce
    frames: [walk_0, walk_1]
    wrap: ping-pong
    iterations: 2
    speed: 2
    autoplay: false
`

func TestAnimationStore_LoadAnimations(t *testing.T) {
	st := NewAnimationStore(newTestAtlas())
	if err := st.LoadAnimations([]byte(storeYAML)); err != nil {
		t.Fatalf("LoadAnimations: %v", err)
	}
	if got := st.Names(); !reflect.DeepEqual(got, []string{"bounce", "poof", "walk"}) {
		t.Errorf("Names = %v", got)
	}

	walk, ok := st.Get("walk")
	if !ok {
		t.Fatal("walk not found")
	}
	if walk.FramesPerSecond != 8 || walk.WrapMode != WrapLoop || walk.Iterations != -1 || walk.Completion != CompletionNone {
		t.Errorf("walk = %+v", walk)
	}
	if !reflect.DeepEqual(walk.FrameIDs, []string{"walk_0", "walk_1", "walk_2"}) {
		t.Errorf("FrameIDs = %v", walk.FrameIDs)
	}
	e, _ := st.Atlas().Lookup("walk_1")
	if walk.Frames[1] != e.UV {
		t.Errorf("frame 1 = %v, want %v", walk.Frames[1], e.UV)
	}

	bounce, _ := st.Get("bounce")
	if bounce.WrapMode != WrapPingPong || bounce.Speed != 2 || bounce.AutoPlay {
		t.Errorf("bounce = %+v", bounce)
	}
}

func TestAnimationStore_Defaults(t *testing.T) {
	st := NewAnimationStore(newTestAtlas())
	if err := st.LoadAnimations([]byte(storeYAML)); err != nil {
		t.Fatal(err)
	}
	poof, _ := st.Get("poof")
	if poof.FramesPerSecond != 5 || poof.WrapMode != WrapOnce || poof.Iterations != 1 ||
		poof.Speed != 1 || !poof.AutoPlay {
		t.Errorf("poof defaults = %+v", poof)
	}
	if poof.Completion != CompletionDestroy || poof.Delay != 0.5 {
		t.Errorf("poof = %+v", poof)
	}

	if err := st.LoadAnimations([]byte("animations:\n  - name: rest\n    frames: [hero]\n")); err != nil {
		t.Fatal(err)
	}
	rest, _ := st.Get("rest")
	if rest.Completion != CompletionRevert {
		t.Errorf("default completion = %v, want revert", rest.Completion)
	}
	if rest.FrameIDs[0] != "hero.png" {
		t.Errorf("frame id = %q, want resolved hero.png", rest.FrameIDs[0])
	}
}

func TestAnimationStore_FailedLoadLeavesStoreUntouched(t *testing.T) {
	st := NewAnimationStore(newTestAtlas())
	if err := st.LoadAnimations([]byte(storeYAML)); err != nil {
		t.Fatal(err)
	}
	before, _ := st.Get("walk")

	cases := map[string]struct {
		yaml string
		is   error
	}{
		"missing frame": {"animations:\n  - name: walk\n    frames: [walk_0]\n  - name: x\n    frames: [nope]\n", ErrLookupMiss},
		"no frames":     {"animations:\n  - name: walk\n    frames: []\n", ErrDegenerateAnimation},
		"zero fps":      {"animations:\n  - name: walk\n    frames: [walk_0]\n    fps: 0\n", ErrDegenerateAnimation},
		"no name":       {"animations:\n  - frames: [walk_0]\n", ErrDegenerateAnimation},
		"bad wrap":      {"animations:\n  - name: walk\n    frames: [walk_0]\n    wrap: sideways\n", nil},
		"bad yaml":      {"animations: [", nil},
		"duplicate":     {"animations:\n  - name: a\n    frames: [walk_0]\n  - name: a\n    frames: [walk_1]\n", nil},
	}
	for name, c := range cases {
		err := st.LoadAnimations([]byte(c.yaml))
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if c.is != nil && !errors.Is(err, c.is) {
			t.Errorf("%s: err = %v, want %v", name, err, c.is)
		}
		if got, _ := st.Get("walk"); got != before {
			t.Fatalf("%s: walk replaced by failed load", name)
		}
		if st.Len() != 3 {
			t.Fatalf("%s: Len = %d, want 3", name, st.Len())
		}
	}
}

func TestAnimationStore_Register(t *testing.T) {
	st := NewAnimationStore(newTestAtlas())
	d := &AnimationDefinition{Name: "manual", Frames: frames(2), FramesPerSecond: 10}
	if err := st.Register(d); err != nil {
		t.Fatal(err)
	}
	if got, ok := st.Get("manual"); !ok || got != d {
		t.Error("registered definition not returned")
	}
	if d.Speed != 0 || d.Iterations != 0 {
		t.Error("Register must not modify the definition")
	}
	if err := st.Register(&AnimationDefinition{Frames: frames(1), FramesPerSecond: 1}); !errors.Is(err, ErrDegenerateAnimation) {
		t.Errorf("unnamed: err = %v", err)
	}
	if err := st.Register(nil); err == nil {
		t.Error("nil: expected error")
	}
}

func TestAnimationStore_LoadAnimationFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animations.yaml")
	if err := os.WriteFile(path, []byte(storeYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	st := NewAnimationStore(newTestAtlas())
	if err := st.LoadAnimationFile(path); err != nil {
		t.Fatal(err)
	}
	if st.Len() != 3 {
		t.Errorf("Len = %d, want 3", st.Len())
	}
	if err := st.LoadAnimationFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSprite_PlayNamed(t *testing.T) {
	st := NewAnimationStore(newTestAtlas())
	if err := st.LoadAnimations([]byte(storeYAML)); err != nil {
		t.Fatal(err)
	}
	s, err := NewSprite(st.Atlas(), "walk_0", AnchorBottomCenter)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.PlayNamed(st, "walk"); err != nil {
		t.Fatal(err)
	}
	if s.Animation() == nil || s.Animation().Definition().Name != "walk" {
		t.Error("walk not playing")
	}
	if err := s.PlayNamed(st, "fly"); err == nil {
		t.Error("expected error for unknown animation")
	}
}

func TestParseWrapModeAndCompletion(t *testing.T) {
	wraps := map[string]WrapMode{"once": WrapOnce, "Loop": WrapLoop, "pingpong": WrapPingPong, "ping_pong": WrapPingPong, "": WrapOnce}
	for s, want := range wraps {
		if got, err := ParseWrapMode(s); err != nil || got != want {
			t.Errorf("ParseWrapMode(%q) = %v, %v", s, got, err)
		}
	}
	comps := map[string]Completion{"none": CompletionNone, "destroy": CompletionDestroy, "HIDE": CompletionHide, "revert": CompletionRevert}
	for s, want := range comps {
		if got, err := ParseCompletion(s); err != nil || got != want {
			t.Errorf("ParseCompletion(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseCompletion("explode"); err == nil {
		t.Error("expected error for unknown completion")
	}
}
