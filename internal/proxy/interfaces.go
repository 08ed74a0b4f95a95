package proxy

import "io"

type FileFetcher interface {
	FetchFile(id string) (io.ReadCloser, error)
}
