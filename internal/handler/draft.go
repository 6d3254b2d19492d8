package handler

// Merge-on-write helpers for PUT drafts: a field present in the body
// overwrites the stored value, an absent field keeps it.

func applyIfSet[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}

// applyPtrIfSet is the variant for nullable columns.
func applyPtrIfSet[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
