package dom

import "strings"

// HasClass reports whether the element's class attribute contains name.
func (e *Element) HasClass(name string) bool {
	raw, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, class := range strings.Fields(raw) {
		if class == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class attribute unless already present.
func (e *Element) AddClass(name string) {
	name = strings.TrimSpace(name)
	if name == "" || e.HasClass(name) {
		return
	}
	raw, _ := e.Attr("class")
	if raw == "" {
		e.SetAttr("class", name)
		return
	}
	e.SetAttr("class", raw+" "+name)
}

// RemoveClass deletes every occurrence of name from the class attribute.
func (e *Element) RemoveClass(name string) {
	raw, ok := e.Attr("class")
	if !ok {
		return
	}
	classes := strings.Fields(raw)
	kept := classes[:0]
	for _, class := range classes {
		if class != name {
			kept = append(kept, class)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(kept, " "))
}
