package bulldozer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleGroups() DigestGroups {
	return DigestGroups{
		"bbb": {"/z/copy.txt", "/a/orig.txt", "/m/other.txt"},
		"aaa": {"/y/2.bin", "/x/1.bin"},
		"ccc": {"/only/one"},
	}
}

func TestPrune(t *testing.T) {
	pruned := sampleGroups().Prune()

	assert.Len(t, pruned, 2)
	assert.NotContains(t, pruned, "ccc")
}

func TestDigestsAndPathCount(t *testing.T) {
	g := sampleGroups()

	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, g.Digests())
	assert.Equal(t, 6, g.PathCount())
}

func TestSorted_DoesNotMutate(t *testing.T) {
	g := sampleGroups()

	assert.Equal(t, []string{"/a/orig.txt", "/m/other.txt", "/z/copy.txt"}, g.Sorted("bbb"))
	assert.Equal(t, "/z/copy.txt", g["bbb"][0])
}

func TestRemovable_KeepsSmallestPathPerGroup(t *testing.T) {
	g := sampleGroups().Prune()

	removable := Removable(g)

	assert.Equal(t, []string{"/y/2.bin", "/m/other.txt", "/z/copy.txt"}, removable)
}

func TestRemovable_SizeProperty(t *testing.T) {
	g := DigestGroups{
		"d1": {"a", "b"},
		"d2": {"c", "d", "e", "f"},
		"d3": {"g", "h", "i"},
	}

	removable := Removable(g)

	assert.Len(t, removable, g.PathCount()-len(g))
	seen := map[string]bool{}
	for _, path := range removable {
		assert.False(t, seen[path], "duplicate entry %s", path)
		seen[path] = true
	}
	for _, digest := range g.Digests() {
		count := 0
		for _, path := range g[digest] {
			if seen[path] {
				count++
			}
		}
		assert.Equal(t, len(g[digest])-1, count, digest)
		assert.False(t, seen[g.Sorted(digest)[0]], "survivor of %s must not be removable", digest)
	}
}

func TestRemovable_Empty(t *testing.T) {
	assert.Empty(t, Removable(DigestGroups{}))
	assert.Empty(t, Removable(nil))
}

func TestAdd_SamePathCountsOnce(t *testing.T) {
	g := make(DigestGroups)
	g.add("aaa", "/data/only.txt")
	g.add("aaa", "/data/only.txt")

	assert.Equal(t, []string{"/data/only.txt"}, g["aaa"])
	assert.Empty(t, g.Prune())
	assert.Empty(t, Removable(g.Prune()))
}
