package ports

import "context"

// FaceComparator is the external face-comparison oracle. It answers whether
// two images show the same person; error semantics beyond that are the
// adapter's concern.
type FaceComparator interface {
	Compare(ctx context.Context, candidateImage, referenceImage string) (bool, error)
}
