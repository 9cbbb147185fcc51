package components

import "github.com/yohamta/donburi"

// ContactKey identifies one overlapping pair under one collision rule
type ContactKey struct {
	Rule int
	A, B donburi.Entity
}

// ContactsData is the set of overlaps seen on the previous tick.
// Order keeps first-seen order so end events are emitted deterministically.
type ContactsData struct {
	Active map[ContactKey]struct{}
	Order  []ContactKey
}

var Contacts = donburi.NewComponentType[ContactsData]()
