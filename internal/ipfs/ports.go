package ipfs

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Pinner . Pinner
type Pinner interface {
	AddFile(ctx context.Context, filePath, name string) (AddResponse, error)
	Ping(ctx context.Context) error
}
