package sprig

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnimationStore holds named animation definitions resolved against one
// atlas. Definitions are shared: every sprite playing "walk" points at the
// same *AnimationDefinition.
type AnimationStore struct {
	atlas *Atlas
	defs  map[string]*AnimationDefinition
}

// NewAnimationStore creates an empty store whose frame names resolve
// through atlas.
func NewAnimationStore(atlas *Atlas) *AnimationStore {
	return &AnimationStore{atlas: atlas, defs: make(map[string]*AnimationDefinition)}
}

// Atlas returns the atlas frame names are resolved against.
func (st *AnimationStore) Atlas() *Atlas { return st.atlas }

// Register validates def and stores it under def.Name, replacing any
// definition of the same name. def is stored as given, not copied or
// modified.
func (st *AnimationStore) Register(def *AnimationDefinition) error {
	if def == nil {
		return fmt.Errorf("sprig: register nil animation")
	}
	if def.Name == "" {
		return fmt.Errorf("%w: animation has no name", ErrDegenerateAnimation)
	}
	if err := def.Validate(); err != nil {
		return err
	}
	st.defs[def.Name] = def
	return nil
}

// Get returns the definition registered under name.
func (st *AnimationStore) Get(name string) (*AnimationDefinition, bool) {
	def, ok := st.defs[name]
	return def, ok
}

// Len returns the number of definitions.
func (st *AnimationStore) Len() int { return len(st.defs) }

// Names returns the registered names in sorted order.
func (st *AnimationStore) Names() []string {
	names := make([]string, 0, len(st.defs))
	for name := range st.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// animationFile is the YAML document layout:
//
//	animations:
//	  - name: walk
//	    frames: [walk_0, walk_1, walk_2]
//	    fps: 8
//	    wrap: loop
//	    iterations: -1
type animationFile struct {
	Animations []animationSpec `yaml:"animations"`
}

type animationSpec struct {
	Name       string   `yaml:"name"`
	Frames     []string `yaml:"frames"`
	FPS        float64  `yaml:"fps"`
	Wrap       string   `yaml:"wrap"`
	Iterations int      `yaml:"iterations"`
	Speed      float64  `yaml:"speed"`
	Delay      float64  `yaml:"delay"`
	Completion string   `yaml:"completion"`
	AutoPlay   bool     `yaml:"autoplay"`
}

// UnmarshalYAML fills in the defaults for keys the document leaves out.
func (s *animationSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain animationSpec
	*s = animationSpec{
		FPS:        5,
		Wrap:       "once",
		Iterations: 1,
		Speed:      1,
		Completion: "revert",
		AutoPlay:   true,
	}
	return value.Decode((*plain)(s))
}

// LoadAnimations parses a YAML animation document and registers every
// definition in it. Frame names resolve through the store's atlas. Either
// all definitions are registered or, on error, none are.
func (st *AnimationStore) LoadAnimations(yamlData []byte) error {
	var file animationFile
	if err := yaml.Unmarshal(yamlData, &file); err != nil {
		return fmt.Errorf("sprig: failed to parse animations YAML: %w", err)
	}

	staged := make([]*AnimationDefinition, 0, len(file.Animations))
	seen := make(map[string]bool, len(file.Animations))
	for i := range file.Animations {
		def, err := st.buildDefinition(&file.Animations[i])
		if err != nil {
			return err
		}
		if seen[def.Name] {
			return fmt.Errorf("sprig: duplicate animation %q", def.Name)
		}
		seen[def.Name] = true
		staged = append(staged, def)
	}

	for _, def := range staged {
		st.defs[def.Name] = def
	}
	Logger().Debug("sprig: animations loaded", "atlas", st.atlas.Name(), "count", len(staged))
	return nil
}

// LoadAnimationFile reads path and passes its contents to LoadAnimations.
func (st *AnimationStore) LoadAnimationFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sprig: failed to read animations: %w", err)
	}
	if err := st.LoadAnimations(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (st *AnimationStore) buildDefinition(spec *animationSpec) (*AnimationDefinition, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: animation has no name", ErrDegenerateAnimation)
	}
	wrap, err := ParseWrapMode(spec.Wrap)
	if err != nil {
		return nil, fmt.Errorf("sprig: animation %q: %w", spec.Name, err)
	}
	completion, err := ParseCompletion(spec.Completion)
	if err != nil {
		return nil, fmt.Errorf("sprig: animation %q: %w", spec.Name, err)
	}

	def := &AnimationDefinition{
		Name:            spec.Name,
		Frames:          make([]Rect, 0, len(spec.Frames)),
		FrameIDs:        make([]string, 0, len(spec.Frames)),
		FramesPerSecond: spec.FPS,
		WrapMode:        wrap,
		Iterations:      spec.Iterations,
		Speed:           spec.Speed,
		Delay:           spec.Delay,
		Completion:      completion,
		AutoPlay:        spec.AutoPlay,
	}
	for _, id := range spec.Frames {
		e, err := st.atlas.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("sprig: animation %q: %w", spec.Name, err)
		}
		def.Frames = append(def.Frames, e.UV)
		def.FrameIDs = append(def.FrameIDs, e.ID)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// ParseWrapMode parses "once", "loop" or "pingpong" (case-insensitive;
// "ping_pong" and "ping-pong" are accepted too).
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(s)) {
	case "once", "":
		return WrapOnce, nil
	case "loop":
		return WrapLoop, nil
	case "pingpong":
		return WrapPingPong, nil
	}
	return WrapOnce, fmt.Errorf("unknown wrap mode %q", s)
}

// ParseCompletion parses "none", "destroy", "hide" or "revert".
func ParseCompletion(s string) (Completion, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return CompletionNone, nil
	case "destroy":
		return CompletionDestroy, nil
	case "hide":
		return CompletionHide, nil
	case "revert":
		return CompletionRevert, nil
	}
	return CompletionNone, fmt.Errorf("unknown completion %q", s)
}
