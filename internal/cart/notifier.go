package cart

// Listener receives the service after an observed mutation.
type Listener func(*Service)

// AddListener registers fn and returns the handle to pass to RemoveListener.
// Listeners are held in a uniqueness-preserving set; invocation order is not
// guaranteed.
func (s *Service) AddListener(fn Listener) *Listener {
	handle := &fn
	s.listeners[handle] = struct{}{}
	return handle
}

// RemoveListener unregisters a listener by its handle.
func (s *Service) RemoveListener(handle *Listener) {
	delete(s.listeners, handle)
}

// ClearListeners drops every registered listener.
func (s *Service) ClearListeners() {
	s.listeners = make(map[*Listener]struct{})
}

// Notify synchronously invokes every registered listener with the service.
func (s *Service) Notify() {
	for handle := range s.listeners {
		(*handle)(s)
	}
}

// shouldNotify interprets the optional trailing notify flag mutators accept:
// omitted means notify, an explicit false batches silently.
func shouldNotify(notify []bool) bool {
	return len(notify) == 0 || notify[0]
}
