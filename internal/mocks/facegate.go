package mocks

import "context"

// MockFaceComparator is a mock implementation of the FaceComparator interface
type MockFaceComparator struct {
	CompareFunc func(ctx context.Context, candidateImage, referenceImage string) (bool, error)
}

func (m *MockFaceComparator) Compare(ctx context.Context, candidateImage, referenceImage string) (bool, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, candidateImage, referenceImage)
	}
	return false, nil
}
