package hover

// ClickSource looks up the click handler of an object.
type ClickSource interface {
	Clickable(id EntityID) (Clickable, bool)
}

// ClickMap is a ClickSource backed by a map.
type ClickMap map[EntityID]Clickable

// Clickable returns the handler registered for id.
func (m ClickMap) Clickable(id EntityID) (Clickable, bool) {
	c, ok := m[id]
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}

// Dispatch invokes OnClick of the object identified by id. It reports
// whether a handler ran; objects without a click handler are ignored.
// Dispatch keeps no state and never touches the hovered slot.
func Dispatch(src ClickSource, id EntityID, w World) bool {
	if src == nil {
		return false
	}
	c, ok := src.Clickable(id)
	if !ok {
		return false
	}
	c.OnClick(id, w)
	return true
}

// ClickHovered dispatches a click to the currently hovered object, resolving
// the click target with the same ray test that drives hovering. Returns
// false if nothing is hovered or the hovered object is not clickable.
func (s *HoverSystem) ClickHovered(src ClickSource, w World) bool {
	id, ok := s.Hovered()
	if !ok {
		return false
	}
	return Dispatch(src, id, w)
}
