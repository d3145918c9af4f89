package port

import "context"

// Dialer hands a tel: URI to whatever places calls on this host.
type Dialer interface {
	Dial(ctx context.Context, uri string) error
}
