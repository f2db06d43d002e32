package utils

// NextID returns one plus the largest id, or 1 for an empty collection.
func NextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
