package typeclass

import "fmt"

// Show renders a value for humans.
type Show[A any] interface {
	Show(a A) string
}

type show[A any] struct {
	show func(A) string
}

func (s show[A]) Show(a A) string {
	return s.show(a)
}

// FromShow builds a Show from a rendering function.
func FromShow[A any](f func(A) string) Show[A] {
	return show[A]{show: f}
}

// ShowSprint renders with fmt's %v verb.
func ShowSprint[A any]() Show[A] {
	return FromShow(func(a A) string {
		return fmt.Sprintf("%v", a)
	})
}

// ShowQuoted renders strings with Go quoting.
func ShowQuoted() Show[string] {
	return FromShow(func(s string) string {
		return fmt.Sprintf("%q", s)
	})
}
