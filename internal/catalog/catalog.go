package catalog

import (
	"fmt"
	"strings"

	"fitforge/workout-app/internal/domain"
)

// Catalog is the immutable set of known exercises. It is built once at
// startup and injected wherever exercise metadata is needed; nothing
// mutates it afterwards.
type Catalog struct {
	uids    []string // insertion order, used for stable listings
	entries map[string]domain.ExerciseDefinition
}

// New builds a catalog from a list of definitions. Duplicate uids are a
// configuration defect and rejected outright.
func New(defs []domain.ExerciseDefinition) (*Catalog, error) {
	c := &Catalog{
		uids:    make([]string, 0, len(defs)),
		entries: make(map[string]domain.ExerciseDefinition, len(defs)),
	}
	for _, def := range defs {
		if def.UID == "" {
			return nil, fmt.Errorf("catalog entry %q has empty uid", def.Name)
		}
		if _, exists := c.entries[def.UID]; exists {
			return nil, fmt.Errorf("duplicate exercise uid: %s", def.UID)
		}
		c.uids = append(c.uids, def.UID)
		c.entries[def.UID] = def
	}
	return c, nil
}

// Default returns the built-in exercise catalog.
func Default() *Catalog {
	c, err := New(defaultExercises)
	if err != nil {
		// The built-in data is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

// Get returns the definition for uid, if present.
func (c *Catalog) Get(uid string) (domain.ExerciseDefinition, bool) {
	def, ok := c.entries[uid]
	return def, ok
}

// Has reports whether uid is a known exercise.
func (c *Catalog) Has(uid string) bool {
	_, ok := c.entries[uid]
	return ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.uids)
}

// UIDs returns all exercise uids in catalog order.
func (c *Catalog) UIDs() []string {
	out := make([]string, len(c.uids))
	copy(out, c.uids)
	return out
}

// All returns every definition in catalog order.
func (c *Catalog) All() []domain.ExerciseDefinition {
	out := make([]domain.ExerciseDefinition, 0, len(c.uids))
	for _, uid := range c.uids {
		out = append(out, c.entries[uid])
	}
	return out
}

// FormatList renders the catalog as the flat line-oriented listing embedded
// in generation prompts, one exercise per line:
//
//	ex_001 | Barbell Bench Press | Groups: chest, triceps | Type: compound | Category: push/upper
func (c *Catalog) FormatList() string {
	var b strings.Builder
	for i, uid := range c.uids {
		if i > 0 {
			b.WriteByte('\n')
		}
		def := c.entries[uid]
		fmt.Fprintf(&b, "%s | %s | Groups: %s | Type: %s | Category: %s",
			uid, def.Name, strings.Join(def.MuscleGroups, ", "), def.MovementType, def.Category)
	}
	return b.String()
}

// UnknownExerciseError reports the first generated exercise uid that is not
// present in the catalog.
type UnknownExerciseError struct {
	UID string
}

func (e *UnknownExerciseError) Error() string {
	return fmt.Sprintf("invalid exercise uid: %s", e.UID)
}

// ValidateProgram checks every exercise reference in the candidate against
// the catalog. It fails fast on the first unknown uid; the whole program is
// all-or-nothing. No other structural checks are performed here; day range,
// duration and set bounds are constrained by the generation schema only.
func (c *Catalog) ValidateProgram(program *domain.CandidateProgram) error {
	for _, workout := range program.Workouts {
		for _, exercise := range workout.Exercises {
			if !c.Has(exercise.UID) {
				return &UnknownExerciseError{UID: exercise.UID}
			}
		}
	}
	return nil
}
