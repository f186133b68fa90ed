package generation

import "strings"

// ExerciseRef is the minimal identity the resolver and transformer need
// for one known exercise.
type ExerciseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExerciseCatalog resolves a generated exercise name to a known
// exercise, or reports that it is unknown.
type ExerciseCatalog interface {
	FindByName(name string) (ExerciseRef, bool)
}

// StaticCatalog is an in-memory catalog snapshot built once per run.
// Lookup is exact-match first, then case-insensitive.
type StaticCatalog struct {
	exact   map[string]ExerciseRef
	folded  map[string]ExerciseRef
	entries []ExerciseRef
}

func NewStaticCatalog(refs []ExerciseRef) *StaticCatalog {
	c := &StaticCatalog{
		exact:   make(map[string]ExerciseRef, len(refs)),
		folded:  make(map[string]ExerciseRef, len(refs)),
		entries: refs,
	}
	for _, ref := range refs {
		if _, dup := c.exact[ref.Name]; !dup {
			c.exact[ref.Name] = ref
		}
		folded := strings.ToLower(ref.Name)
		if _, dup := c.folded[folded]; !dup {
			c.folded[folded] = ref
		}
	}
	return c
}

func (c *StaticCatalog) FindByName(name string) (ExerciseRef, bool) {
	if ref, ok := c.exact[name]; ok {
		return ref, true
	}
	ref, ok := c.folded[strings.ToLower(name)]
	return ref, ok
}

// Len reports the snapshot size; used for request logging.
func (c *StaticCatalog) Len() int {
	return len(c.entries)
}
