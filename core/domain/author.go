// ABOUTME: Author and roster domain models for authorship attribution
// ABOUTME: A roster is ordered; position decides the color an author receives

package domain

// Author is a wiki editor. UserID is the wiki's own user id, which is what the
// authorship service embeds in its span markers. It is zero until resolved.
type Author struct {
	UserID int    `json:"userid"`
	Name   string `json:"name"`
}

// Resolved reports whether the author's wiki user id is known.
func (a Author) Resolved() bool {
	return a.UserID > 0
}

// Roster is an ordered list of candidate authors.
type Roster []Author

// NewRoster builds an unresolved roster from usernames, keeping their order.
func NewRoster(usernames []string) Roster {
	roster := make(Roster, 0, len(usernames))
	for _, name := range usernames {
		roster = append(roster, Author{Name: name})
	}
	return roster
}

// Names returns the usernames in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, a := range r {
		names[i] = a.Name
	}
	return names
}

// Clone returns a copy that shares no memory with r.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// LegendEntry pairs an author name with the color used to highlight them.
type LegendEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
