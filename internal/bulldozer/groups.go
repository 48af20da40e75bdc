package bulldozer

import "sort"

// DigestGroups maps a hex content digest to the paths that produced it, in
// discovery order.
type DigestGroups map[string][]string

// add appends path to its group once; a path seen twice is still one file
func (g DigestGroups) add(digest, path string) {
	for _, existing := range g[digest] {
		if existing == path {
			return
		}
	}
	g[digest] = append(g[digest], path)
}

// Prune returns the groups holding more than one path
func (g DigestGroups) Prune() DigestGroups {
	pruned := make(DigestGroups)
	for digest, paths := range g {
		if len(paths) > 1 {
			pruned[digest] = paths
		}
	}
	return pruned
}

// Digests returns the digests in ascending order
func (g DigestGroups) Digests() []string {
	digests := make([]string, 0, len(g))
	for digest := range g {
		digests = append(digests, digest)
	}
	sort.Strings(digests)
	return digests
}

// PathCount is the total number of paths across all groups
func (g DigestGroups) PathCount() int {
	n := 0
	for _, paths := range g {
		n += len(paths)
	}
	return n
}

// Sorted returns a lexicographically sorted copy of the paths for digest.
// The first element is the group's survivor.
func (g DigestGroups) Sorted(digest string) []string {
	paths := append([]string(nil), g[digest]...)
	sort.Strings(paths)
	return paths
}

// Removable lists, for every group, all paths except the survivor (the
// lexicographically smallest path). Groups are taken in ascending digest
// order, so the result does not depend on map iteration or discovery order.
func Removable(groups DigestGroups) []string {
	var removable []string
	for _, digest := range groups.Digests() {
		paths := groups.Sorted(digest)
		if len(paths) < 2 {
			continue
		}
		removable = append(removable, paths[1:]...)
	}
	return removable
}
