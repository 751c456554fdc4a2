package vetvisits

import "context"

type Repository interface {
	Create(ctx context.Context, v *VetVisit) error
	List(ctx context.Context) ([]VetVisit, error)
}

// Session es una unidad de trabajo; Close descarta lo no commiteado.
type Session interface {
	VetVisits() Repository
	Commit() error
	Close() error
}

type OpenSession func(ctx context.Context) (Session, error)
