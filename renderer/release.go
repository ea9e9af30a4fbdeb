package renderer

import "log/slog"

type resource struct {
	name    string
	release func()
}

// releaseStack frees GPU objects in the reverse of the order they were
// created. Each object is released once; later calls are no-ops.
type releaseStack struct {
	items []resource
}

func (s *releaseStack) push(name string, release func()) {
	s.items = append(s.items, resource{name: name, release: release})
}

// releaseAll frees everything and returns the names in release order.
func (s *releaseStack) releaseAll() []string {
	released := make([]string, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		res := s.items[i]
		res.release()
		slog.Debug("released", "resource", res.name)
		released = append(released, res.name)
	}
	s.items = nil
	return released
}
