package appstate

import "fmt"

// View selects the screen being shown.
type View int

const (
	ViewHome View = iota
	ViewFuture
	ViewChat
	ViewGoals
	ViewStudy
	ViewCommunity
)

// Views lists every view in tab order.
var Views = []View{ViewHome, ViewFuture, ViewChat, ViewGoals, ViewStudy, ViewCommunity}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	return v >= ViewHome && v <= ViewCommunity
}

// Label is the tab caption.
func (v View) Label() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewFuture:
		return "Future"
	case ViewChat:
		return "AI Chat"
	case ViewGoals:
		return "Goals"
	case ViewStudy:
		return "Study"
	case ViewCommunity:
		return "Club"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewFuture:
		return "future"
	case ViewChat:
		return "chat"
	case ViewGoals:
		return "goals"
	case ViewStudy:
		return "study"
	case ViewCommunity:
		return "community"
	}
	return fmt.Sprintf("View(%d)", int(v))
}
