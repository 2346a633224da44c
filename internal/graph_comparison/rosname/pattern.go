// Package rosname matches ROS names against Model names that carry the
// unresolved-segment wildcard "?".
//
// A segment made only of "?" matches one or more trailing segments when it is
// the last segment, and zero or more whole segments anywhere else. A "?" mixed
// with other characters matches any run of characters inside one segment.
package rosname

import (
	"errors"
	"fmt"
	"strings"
)

const Wildcard = "?"

var ErrAdjacentWildcards = errors.New("adjacent wildcards")

type Pattern struct {
	raw  string
	segs []segment
}

type segment struct {
	// literal pieces between wildcards; a plain segment has exactly one
	parts []string
	whole bool
}

func HasWildcard(s string) bool { return strings.Contains(s, Wildcard) }

func Compile(pattern string) (*Pattern, error) {
	if strings.Contains(pattern, Wildcard+Wildcard) {
		return nil, fmt.Errorf("rosname: %q: %w", pattern, ErrAdjacentWildcards)
	}
	raw := strings.Split(pattern, "/")
	segs := make([]segment, 0, len(raw))
	for _, s := range raw {
		segs = append(segs, segment{
			parts: strings.Split(s, Wildcard),
			whole: s == Wildcard,
		})
	}
	return &Pattern{raw: pattern, segs: segs}, nil
}

func (p *Pattern) String() string { return p.raw }

// Match reports whether the whole of name is covered by the pattern.
func (p *Pattern) Match(name string) bool {
	return matchSegments(p.segs, strings.Split(name, "/"))
}

// Match compiles pattern and matches name. Invalid patterns match nothing.
func Match(pattern, name string) bool {
	if !HasWildcard(pattern) {
		return pattern == name
	}
	p, err := Compile(pattern)
	if err != nil {
		return false
	}
	return p.Match(name)
}

func matchSegments(ps []segment, ns []string) bool {
	if len(ps) == 0 {
		return len(ns) == 0
	}
	s := ps[0]
	if s.whole {
		if len(ps) == 1 {
			return len(ns) > 0 && strings.Join(ns, "") != ""
		}
		for k := 0; k <= len(ns); k++ {
			if matchSegments(ps[1:], ns[k:]) {
				return true
			}
		}
		return false
	}
	return len(ns) > 0 && s.match(ns[0]) && matchSegments(ps[1:], ns[1:])
}

func (s segment) match(name string) bool {
	if len(s.parts) == 1 {
		return s.parts[0] == name
	}
	first, last := s.parts[0], s.parts[len(s.parts)-1]
	if !strings.HasPrefix(name, first) {
		return false
	}
	name = name[len(first):]
	for _, mid := range s.parts[1 : len(s.parts)-1] {
		i := strings.Index(name, mid)
		if i < 0 {
			return false
		}
		name = name[i+len(mid):]
	}
	return strings.HasSuffix(name, last)
}
