package fileio

// RelativeToSize converts a relative position into an absolute offset within
// a file of the given size. Negative positions count back from end-of-file.
// The result is always within [0, size].
func RelativeToSize(position, size int64) int64 {
	if size < 0 {
		size = 0
	}
	if position < 0 {
		position += size
	}
	if position < 0 {
		return 0
	}
	if position > size {
		return size
	}
	return position
}
