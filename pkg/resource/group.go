package resource

// GroupBy partitions resources into groups in first-seen key order. Item
// order inside each group matches input order; no re-sorting happens at any
// point. Resources with an empty key never reach here (Normalize drops
// them), but are skipped defensively.
func GroupBy(resources []Resource, keyFn func(Resource) string) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, r := range resources {
		key := keyFn(r)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Items = append(groups[i].Items, r)
	}
	return groups
}

// GroupByCategory partitions resources by their grouping key.
func GroupByCategory(resources []Resource) []Group {
	return GroupBy(resources, func(r Resource) string { return r.Category })
}

// Categories returns the group keys in group order.
func Categories(groups []Group) []string {
	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	return keys
}
