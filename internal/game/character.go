package game

import "github.com/abhisek/casefile/internal/i18n"

// Character is a playable detective.
type Character struct {
	ID          string
	Name        string
	Description i18n.Text
}

// Roster is the set of playable characters.
type Roster []Character

// Find returns the character with the given id.
func (r Roster) Find(id string) (Character, bool) {
	for _, c := range r {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}
