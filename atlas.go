package sprig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasEntry describes one image packed into an atlas page.
// Value type, immutable once the atlas is built.
type AtlasEntry struct {
	ID        string
	UV        Rect // normalized, V up
	PixelSize Vec2 // native size of the packed image in pixels
}

// AtlasConfig carries the camera setup the atlas was authored against.
// OrthoSize is half the view height in world units and TargetScreenHeight the
// screen height in pixels; together they convert pixel sizes into world
// units. A zero config means one world unit per pixel.
type AtlasConfig struct {
	Name               string
	OrthoSize          float64
	TargetScreenHeight float64
}

// Atlas is an ordered, read-only catalog of the images packed into one
// texture atlas. Many sprites may share one Atlas; nothing in sprig mutates
// it after construction apart from attaching page images.
type Atlas struct {
	name    string
	config  AtlasConfig
	entries []AtlasEntry
	index   map[string]int
	pages   [densityCount]*ebiten.Image
}

// NewAtlas builds an Atlas from entries in the order given. That order is
// the order prefix lookups scan. Later duplicates of an id are kept in the
// list but exact lookups resolve to the first.
func NewAtlas(entries []AtlasEntry, cfg AtlasConfig) *Atlas {
	a := &Atlas{
		name:    cfg.Name,
		config:  cfg,
		entries: make([]AtlasEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(a.entries, entries)
	for i, e := range a.entries {
		if _, dup := a.index[e.ID]; !dup {
			a.index[e.ID] = i
		}
	}
	return a
}

// Name returns the atlas name from its config.
func (a *Atlas) Name() string { return a.name }

// Len returns the number of entries.
func (a *Atlas) Len() int { return len(a.entries) }

// Entries returns the catalog in lookup order. The returned slice MUST NOT be mutated.
func (a *Atlas) Entries() []AtlasEntry { return a.entries }

// Config returns the configuration the atlas was built with.
func (a *Atlas) Config() AtlasConfig { return a.config }

// OrthoAdjustment returns the scalar converting atlas pixels into world
// units: 2 * OrthoSize / TargetScreenHeight, or 1 when either is unset.
func (a *Atlas) OrthoAdjustment() float64 {
	if a.config.OrthoSize <= 0 || a.config.TargetScreenHeight <= 0 {
		return 1
	}
	return 2 * a.config.OrthoSize / a.config.TargetScreenHeight
}

// Lookup resolves an image id. An exact match wins; otherwise the first
// entry, in catalog order, whose id is a prefix of the query; otherwise the
// first entry whose id starts with the query, so "hero" finds "hero.png".
// A miss is logged and returns an error wrapping ErrLookupMiss.
func (a *Atlas) Lookup(id string) (AtlasEntry, error) {
	if i, ok := a.index[id]; ok {
		return a.entries[i], nil
	}
	if id != "" {
		for _, e := range a.entries {
			if e.ID != "" && strings.HasPrefix(id, e.ID) {
				return e, nil
			}
		}
		for _, e := range a.entries {
			if strings.HasPrefix(e.ID, id) {
				return e, nil
			}
		}
	}
	Logger().Warn("sprig: atlas lookup miss", "atlas", a.name, "id", id)
	return AtlasEntry{}, fmt.Errorf("%w: %q in atlas %q", ErrLookupMiss, id, a.name)
}

// SetPage attaches the page image for a density.
func (a *Atlas) SetPage(d Density, img *ebiten.Image) {
	if d >= densityCount {
		d = DensityStandard
	}
	a.pages[d] = img
}

// Page returns the page image for the requested density, falling back to
// the standard page when no high-density page was attached.
func (a *Atlas) Page(d Density) *ebiten.Image {
	if d == DensityHigh && a.pages[DensityHigh] != nil {
		return a.pages[DensityHigh]
	}
	return a.pages[DensityStandard]
}

// HasHighDensity reports whether a high-density page is attached.
func (a *Atlas) HasHighDensity() bool {
	return a.pages[DensityHigh] != nil
}

// LoadAtlas parses TexturePacker JSON into an Atlas. Both the hash format
// ("frames" object, key order preserved) and the array format ("frames"
// list) are accepted. meta.size must be present so pixel frames can be
// normalized. Rotated frames are rejected.
func LoadAtlas(jsonData []byte, cfg AtlasConfig) (*Atlas, error) {
	var probe struct {
		Frames json.RawMessage `json:"frames"`
		Meta   jsonMeta        `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("sprig: failed to parse atlas JSON: %w", err)
	}
	if len(probe.Frames) == 0 {
		return nil, fmt.Errorf("sprig: atlas JSON has no \"frames\" key")
	}
	if probe.Meta.Size.W <= 0 || probe.Meta.Size.H <= 0 {
		return nil, fmt.Errorf("sprig: atlas JSON has no usable meta.size")
	}

	var (
		frames []namedFrame
		err    error
	)
	switch firstByte(probe.Frames) {
	case '{':
		frames, err = parseHashFrames(probe.Frames)
	case '[':
		frames, err = parseArrayFrames(probe.Frames)
	default:
		err = fmt.Errorf("sprig: atlas \"frames\" must be an object or an array")
	}
	if err != nil {
		return nil, err
	}

	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(probe.Meta.Image, ".png")
	}
	pageW := float64(probe.Meta.Size.W)
	pageH := float64(probe.Meta.Size.H)
	entries := make([]AtlasEntry, 0, len(frames))
	for _, f := range frames {
		if f.Rotated {
			return nil, fmt.Errorf("sprig: atlas frame %q is rotated; disable rotation when packing", f.name)
		}
		entries = append(entries, frameToEntry(f, pageW, pageH))
	}
	return NewAtlas(entries, cfg), nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonMeta struct {
	Image string   `json:"image"`
	Size  jsonSize `json:"size"`
}

type jsonFrame struct {
	Frame      jsonRect `json:"frame"`
	Rotated    bool     `json:"rotated"`
	Trimmed    bool     `json:"trimmed"`
	SourceSize jsonSize `json:"sourceSize"`
}

type namedFrame struct {
	name string
	jsonFrame
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// parseHashFrames walks {"name": {frame...}, ...} token by token so the
// catalog keeps the file's key order.
func parseHashFrames(raw json.RawMessage) ([]namedFrame, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("sprig: failed to parse atlas frames: %w", err)
	}
	var frames []namedFrame
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("sprig: failed to parse atlas frames: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("sprig: failed to parse atlas frames: unexpected token %v", tok)
		}
		var f jsonFrame
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("sprig: failed to parse atlas frame %q: %w", name, err)
		}
		frames = append(frames, namedFrame{name: name, jsonFrame: f})
	}
	return frames, nil
}

// parseArrayFrames parses [{"filename": "...", "frame": {...}}, ...].
func parseArrayFrames(raw json.RawMessage) ([]namedFrame, error) {
	var list []struct {
		Filename string `json:"filename"`
		jsonFrame
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("sprig: failed to parse atlas frames array: %w", err)
	}
	frames := make([]namedFrame, len(list))
	for i, f := range list {
		frames[i] = namedFrame{name: f.Filename, jsonFrame: f.jsonFrame}
	}
	return frames, nil
}

// frameToEntry converts a top-left-origin pixel frame into a V-up UV rect.
// PixelSize is the packed frame size, which is what the UV rect covers.
func frameToEntry(f namedFrame, pageW, pageH float64) AtlasEntry {
	x := float64(f.Frame.X)
	y := float64(f.Frame.Y)
	w := float64(f.Frame.W)
	h := float64(f.Frame.H)
	return AtlasEntry{
		ID: f.name,
		UV: Rect{
			XMin: x / pageW,
			YMin: 1 - (y+h)/pageH,
			XMax: (x + w) / pageW,
			YMax: 1 - y/pageH,
		},
		PixelSize: Vec2{X: w, Y: h},
	}
}
