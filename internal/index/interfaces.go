package index

import "portfolio-backend/pkg/models"

type Lister interface {
	ListFolder(folderID, apiKey string) ([]models.RemoteFile, error)
}
