// Package patterns implements the pattern catalog: the ordered set of
// segmented-folder recognition rules, builtin and user-defined.
package patterns

import (
	"regexp"
	"sort"

	"github.com/arthur-debert/mergef/pkg/errors"
	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/types"
)

// userPriorityBase keeps user patterns after every builtin; within user
// patterns, insertion order is preserved.
const userPriorityBase = 1000

// Compiled pairs a pattern with its compiled regular expressions.
// Matching is case-insensitive; the original name casing is preserved
// for reconstruction.
type Compiled struct {
	types.Pattern

	base   *regexp.Regexp
	target *regexp.Regexp
}

// Compile validates and compiles a pattern. It fails with INVALID_REGEX
// when either expression does not compile or when the base expression has
// no capture group to yield the base name.
func Compile(p types.Pattern) (*Compiled, error) {
	base, err := regexp.Compile("(?i)" + p.Base)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRegex, "pattern %q: base expression does not compile", p.Name)
	}
	if base.NumSubexp() < 1 {
		return nil, errors.Newf(errors.ErrInvalidRegex, "pattern %q: base expression needs at least one capture group", p.Name)
	}
	target, err := regexp.Compile("(?i)" + p.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRegex, "pattern %q: target expression does not compile", p.Name)
	}
	return &Compiled{Pattern: p, base: base, target: target}, nil
}

// MatchBase matches a folder name against the base expression. On a match
// it returns the capture groups (group 1 is the raw base name).
func (c *Compiled) MatchBase(name string) ([]string, bool) {
	m := c.base.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// IsTarget reports whether a folder name looks like the canonical first
// segment. Search semantics, not a full-name match.
func (c *Compiled) IsTarget(name string) bool {
	return c.target.MatchString(name)
}

// Catalog is the merged, priority-ordered set of recognition rules for one
// invocation: the immutable builtin table plus explicitly loaded user
// patterns. It is plain data; matching is a linear scan in priority order.
type Catalog struct {
	entries []*Compiled
}

// NewCatalog builds a catalog from the builtin table and the user's
// stored patterns. User patterns that fail to compile are skipped with a
// warning rather than failing the whole invocation; they were validated
// at add time, so a broken entry means a hand-edited store.
func NewCatalog(user []types.Pattern) *Catalog {
	logger := logging.GetLogger("patterns")

	cat := &Catalog{}
	for _, p := range Builtins() {
		c, err := Compile(p)
		if err != nil {
			// builtins are covered by tests; this is unreachable short
			// of a bad edit to the builtin table
			panic(err)
		}
		cat.entries = append(cat.entries, c)
	}

	for i, p := range user {
		p.Source = types.SourceUser
		if p.Priority == 0 {
			p.Priority = userPriorityBase + i
		}
		c, err := Compile(p)
		if err != nil {
			logger.Warn().Err(err).Str("pattern", p.Name).Msg("skipping unloadable user pattern")
			continue
		}
		cat.entries = append(cat.entries, c)
	}

	cat.sortEntries()
	return cat
}

func (c *Catalog) sortEntries() {
	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[i].Priority < c.entries[j].Priority
	})
}

// Entries returns the compiled patterns in priority order
func (c *Catalog) Entries() []*Compiled {
	return c.entries
}

// List returns the catalog's patterns: builtins first in display order,
// then user patterns in insertion order.
func (c *Catalog) List() []types.Pattern {
	out := make([]types.Pattern, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Pattern)
	}
	return out
}

// Resolve returns the pattern with the given name
func (c *Catalog) Resolve(name string) (types.Pattern, error) {
	for _, e := range c.entries {
		if e.Name == name {
			return e.Pattern, nil
		}
	}
	return types.Pattern{}, errors.Newf(errors.ErrPatternNotFound, "no pattern named %q", name)
}

// Add validates a user pattern and inserts it into the catalog. It fails
// with DUPLICATE_PATTERN when the name is taken and INVALID_REGEX when
// validation fails. Persistence is the config store's job.
func (c *Catalog) Add(p types.Pattern) error {
	for _, e := range c.entries {
		if e.Name == p.Name {
			return errors.Newf(errors.ErrDuplicatePattern, "pattern %q already exists", p.Name)
		}
	}
	p.Source = types.SourceUser
	if p.Priority == 0 {
		p.Priority = userPriorityBase + len(c.entries)
	}
	compiled, err := Compile(p)
	if err != nil {
		return err
	}
	c.entries = append(c.entries, compiled)
	c.sortEntries()
	return nil
}

// Remove deletes a user pattern from the catalog. Builtins are protected.
func (c *Catalog) Remove(name string) error {
	for i, e := range c.entries {
		if e.Name != name {
			continue
		}
		if e.IsBuiltin() {
			return errors.Newf(errors.ErrPatternProtected, "pattern %q is builtin and cannot be removed", name)
		}
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		return nil
	}
	return errors.Newf(errors.ErrPatternNotFound, "no pattern named %q", name)
}

// Filter returns a catalog restricted to the single named pattern, for
// the --pattern flag. An unknown name is a hard failure.
func (c *Catalog) Filter(name string) (*Catalog, error) {
	for _, e := range c.entries {
		if e.Name == name {
			return &Catalog{entries: []*Compiled{e}}, nil
		}
	}
	return nil, errors.Newf(errors.ErrPatternNotFound, "no pattern named %q", name)
}
