package stage

import "fmt"

// Stage is the registry of all sprites and text labels for one run.
// It is owned by the platform-facing game object and borrowed by the
// per-tick update; access is strictly single-threaded and frame-synchronous.
type Stage struct {
	sprites map[string]*Sprite
	texts   map[string]*Text

	// Insertion order, for deterministic iteration and rendering.
	spriteOrder []string
	textOrder   []string

	// Overlapping collidable pairs as of the last Collisions call.
	overlaps map[pairKey]bool
}

// New creates an empty stage.
func New() *Stage {
	return &Stage{
		sprites:  make(map[string]*Sprite),
		texts:    make(map[string]*Text),
		overlaps: make(map[pairKey]bool),
	}
}

// AddSprite registers a sprite under its ID and returns it for further
// field assignment. Duplicate IDs indicate a setup bug and panic.
func (st *Stage) AddSprite(s Sprite) *Sprite {
	if s.ID == "" {
		panic("stage: sprite with empty ID")
	}
	if _, exists := st.sprites[s.ID]; exists {
		panic(fmt.Sprintf("stage: sprite %q already registered", s.ID))
	}
	if s.Scale == 0 {
		s.Scale = 1.0
	}
	sp := &s
	st.sprites[s.ID] = sp
	st.spriteOrder = append(st.spriteOrder, s.ID)
	return sp
}

// Sprite looks up a sprite by ID.
func (st *Stage) Sprite(id string) (*Sprite, bool) {
	s, ok := st.sprites[id]
	return s, ok
}

// MustSprite looks up a required sprite by ID. A missing sprite means the
// stage was never set up correctly, which is a programming error, so this
// panics rather than returning a recoverable error.
func (st *Stage) MustSprite(id string) *Sprite {
	s, ok := st.sprites[id]
	if !ok {
		panic(fmt.Sprintf("stage: required sprite %q not found", id))
	}
	return s
}

// VisitSprites calls fn for every sprite in insertion order.
func (st *Stage) VisitSprites(fn func(*Sprite)) {
	for _, id := range st.spriteOrder {
		fn(st.sprites[id])
	}
}

// VisitRole calls fn for every sprite with the given role, in insertion
// order. Sprites of other roles are skipped, not an error.
func (st *Stage) VisitRole(role Role, fn func(*Sprite)) {
	for _, id := range st.spriteOrder {
		if s := st.sprites[id]; s.Role == role {
			fn(s)
		}
	}
}

// AddText registers a text label under its ID and returns it.
// Duplicate IDs panic, same as sprites.
func (st *Stage) AddText(t Text) *Text {
	if t.ID == "" {
		panic("stage: text with empty ID")
	}
	if _, exists := st.texts[t.ID]; exists {
		panic(fmt.Sprintf("stage: text %q already registered", t.ID))
	}
	tp := &t
	st.texts[t.ID] = tp
	st.textOrder = append(st.textOrder, t.ID)
	return tp
}

// Text looks up a text label by ID.
func (st *Stage) Text(id string) (*Text, bool) {
	t, ok := st.texts[id]
	return t, ok
}

// MustText looks up a required text label by ID, panicking when absent.
func (st *Stage) MustText(id string) *Text {
	t, ok := st.texts[id]
	if !ok {
		panic(fmt.Sprintf("stage: required text %q not found", id))
	}
	return t
}

// VisitTexts calls fn for every text label in insertion order.
func (st *Stage) VisitTexts(fn func(*Text)) {
	for _, id := range st.textOrder {
		fn(st.texts[id])
	}
}
