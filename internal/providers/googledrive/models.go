package googledrive

type File struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

type APIResponse struct {
	Files []File `json:"files"`
}
