package postman

import "strings"

// leaf is a request item together with the folders that contain it.
type leaf struct {
	folders []string
	item    *Item
}

// key identifies a leaf: its folders, its name and its method.
func (l leaf) key() string {
	parts := append(append([]string(nil), l.folders...), l.item.Name, strings.ToUpper(l.item.Request.Method))
	return strings.Join(parts, "\x00")
}

// walk flattens the item tree depth-first. A later leaf with the same key
// replaces an earlier one but keeps its position.
func walk(items []*Item) []leaf {
	var leaves []leaf
	index := make(map[string]int)

	var visit func(items []*Item, folders []string)
	visit = func(items []*Item, folders []string) {
		for _, item := range items {
			if item == nil {
				continue
			}
			if item.IsFolder() {
				visit(item.Item, append(append([]string(nil), folders...), item.Name))
				continue
			}
			l := leaf{folders: folders, item: item}
			k := l.key()
			if i, ok := index[k]; ok {
				leaves[i] = l
				continue
			}
			index[k] = len(leaves)
			leaves = append(leaves, l)
		}
	}
	visit(items, nil)
	return leaves
}

// composePath turns Postman path segments into an OpenAPI path template.
// ":name" segments become "{name}"; empty segments are dropped.
func composePath(segments []string) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		b.WriteByte('/')
		if name, ok := strings.CutPrefix(seg, ":"); ok && name != "" {
			b.WriteString("{" + name + "}")
			continue
		}
		b.WriteString(seg)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
