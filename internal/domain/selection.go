package domain

// Selection is a set of item ids kept in first-selected order so its JSON form is stable.
type Selection []string

func (s Selection) Has(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

func (s Selection) Add(id string) Selection {
	if s.Has(id) {
		return s
	}
	return append(s, id)
}

func (s Selection) Remove(id string) Selection {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (s Selection) Normalize() Selection {
	out := make(Selection, 0, len(s))
	for _, id := range s {
		if id != "" {
			out = out.Add(id)
		}
	}
	return out
}
