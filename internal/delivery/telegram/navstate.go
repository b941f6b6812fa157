package telegram

import "strconv"

// navState is the browsing position within a domain's paginated collection:
// collection key, 1-based page, 0-based index within the page and the chunk
// offset into oversized item text. States are values; navigation replaces
// them, never mutates in place.
type navState struct {
	Domain     string
	Collection string
	Page       int
	Index      int
	Part       int
}

// action encodes the state as the args of a token under the given verb.
func (s navState) action(verb string) Action {
	return newAction(s.Domain, verb,
		s.Collection,
		strconv.Itoa(s.Page),
		strconv.Itoa(s.Index),
		strconv.Itoa(s.Part),
	)
}

// withPart returns a copy of the state pointing at another text chunk.
func (s navState) withPart(part int) navState {
	s.Part = part
	return s
}

// decodeNavState rebuilds a navState from a decoded action. It checks arity
// and that the numeric fields are non-negative integers; it does not know
// the true page or item counts.
func decodeNavState(a Action) (navState, error) {
	if len(a.Args) != 4 || a.Args[0] == "" {
		return navState{}, ErrMalformedToken
	}

	page, err := parseNonNegative(a.Args[1])
	if err != nil {
		return navState{}, err
	}
	index, err := parseNonNegative(a.Args[2])
	if err != nil {
		return navState{}, err
	}
	part, err := parseNonNegative(a.Args[3])
	if err != nil {
		return navState{}, err
	}

	return navState{
		Domain:     a.Domain,
		Collection: a.Args[0],
		Page:       page,
		Index:      index,
		Part:       part,
	}, nil
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrMalformedToken
	}
	return n, nil
}
