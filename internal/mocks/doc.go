// Package mocks provides centralized mock implementations for testing.
//
// Mocks expose one function field per interface method. A nil field falls
// back to a simple default so tests only configure the calls they care about:
//
//	taskStore := &mocks.MockTaskStore{
//	    GetByIDFn: func(ctx context.Context, id string) (*domain.Task, error) {
//	        return nil, store.ErrTaskNotFound
//	    },
//	}
//
// Every call is recorded, so tests can also assert that an operation never
// reached the store.
package mocks
