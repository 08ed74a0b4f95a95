package assets

import "portfolio-backend/pkg/models"

type Index interface {
	Resolve(name string) (models.ResolvedAsset, bool)
	Assets() []models.ResolvedAsset
	Loading() bool
	Err() error
}
