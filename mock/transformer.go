package mock

import (
	"context"

	"github.com/fwojciec/curate"
)

var _ curate.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of curate.Transformer.
type Transformer struct {
	TransformFn func(ctx context.Context, content curate.Content, init *curate.InitContext) (curate.Content, error)
}

func (t *Transformer) Transform(ctx context.Context, content curate.Content, init *curate.InitContext) (curate.Content, error) {
	return t.TransformFn(ctx, content, init)
}

var _ curate.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of curate.RecordStore.
type RecordStore struct {
	SaveFn   func(ctx context.Context, record *curate.Record) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecordStore) Save(ctx context.Context, record *curate.Record) error {
	return s.SaveFn(ctx, record)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}
