package listview

// Selection tracks the rows marked for a bulk action, keyed by stable
// entity id. Keying by row position would silently point at the wrong rows
// after a refetch reorders the view, so ids are the only key used.
type Selection map[string]bool

func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

func (s Selection) Toggle(id string) {
	if s[id] {
		delete(s, id)
		return
	}
	s[id] = true
}

func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

func (s Selection) Len() int {
	return len(s)
}

// Resolve maps the selection onto the filtered view as it exists at
// confirmation time, not selection time: ids whose rows are no longer in
// the view are dropped, and the result follows view order. The output is
// what a bulk delete sends upstream in one batched call.
func Resolve[T any](s Selection, filtered []T, id func(T) string) []string {
	var ids []string
	for _, item := range filtered {
		if s[id(item)] {
			ids = append(ids, id(item))
		}
	}
	return ids
}
