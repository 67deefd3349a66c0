package recordstore

import "context"

type unavailable struct {
	err error
}

// Unavailable returns a TableClient whose every call fails with err. It is
// wired in when the store is not configured so the service can still start
// and answer with the configuration error.
func Unavailable(err error) TableClient {
	return &unavailable{err: err}
}

func (u *unavailable) List(context.Context, string, ListParams) ([]Row, *PageInfo, error) {
	return nil, nil, u.err
}

func (u *unavailable) Get(context.Context, string, string) (Row, error) {
	return nil, u.err
}

func (u *unavailable) Create(context.Context, string, Row) (Row, error) {
	return nil, u.err
}

func (u *unavailable) Update(context.Context, string, string, Row) error {
	return u.err
}
