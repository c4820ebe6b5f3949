package widget

//go:generate go run ../../cmd/propgen -out props_gen.go

// StandardKinds returns the built-in widget vocabulary. The returned kinds
// are shared; callers must not mutate them.
func StandardKinds() []*Kind {
	return standardKinds
}

// KindByName looks up a built-in kind by its alias. Returns nil when the
// alias names no built-in kind.
func KindByName(name string) *Kind {
	for _, k := range standardKinds {
		if k.Name == name {
			return k
		}
	}
	return nil
}
