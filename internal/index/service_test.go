package index

import (
	"errors"
	"testing"

	"portfolio-backend/pkg/models"
)

type mockLister struct {
	files []models.RemoteFile
	err   error
	calls int
}

func (m *mockLister) ListFolder(folderID, apiKey string) ([]models.RemoteFile, error) {
	m.calls++
	return m.files, m.err
}

func TestService_Build_DerivesURLs(t *testing.T) {
	lister := &mockLister{
		files: []models.RemoteFile{
			{ID: "pdf-1", Name: "Resume.pdf", MimeType: "application/pdf"},
			{ID: "img-1", Name: "Headshot.png", MimeType: "image/png"},
			{ID: "doc-1", Name: "Notes.docx", MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		},
	}

	service := NewService(lister, "folder", "key")
	service.Build()

	if service.Loading() {
		t.Error("Expected loading to be false after Build")
	}
	if service.Err() != nil {
		t.Errorf("Expected no build error, got %v", service.Err())
	}

	pdf, ok := service.Resolve("Resume.pdf")
	if !ok {
		t.Fatal("Expected Resume.pdf to resolve")
	}
	if pdf.ThumbnailURL != "/proxy-pdf?id=pdf-1" {
		t.Errorf("Expected PDF thumbnail to go through the proxy, got %q", pdf.ThumbnailURL)
	}
	if pdf.ViewURL != "https://drive.google.com/file/d/pdf-1/preview" {
		t.Errorf("Unexpected PDF view URL: %q", pdf.ViewURL)
	}
	if pdf.DownloadURL != "https://drive.google.com/uc?export=download&id=pdf-1" {
		t.Errorf("Unexpected PDF download URL: %q", pdf.DownloadURL)
	}

	img, ok := service.Resolve("Headshot.png")
	if !ok {
		t.Fatal("Expected Headshot.png to resolve")
	}
	if img.ViewURL != img.ThumbnailURL {
		t.Errorf("Expected image view URL to equal thumbnail URL, got %q and %q", img.ViewURL, img.ThumbnailURL)
	}
	if img.ThumbnailURL != "https://lh3.googleusercontent.com/d/img-1" {
		t.Errorf("Unexpected image thumbnail URL: %q", img.ThumbnailURL)
	}

	doc, ok := service.Resolve("Notes.docx")
	if !ok {
		t.Fatal("Expected Notes.docx to resolve")
	}
	if doc.ViewURL != doc.DownloadURL {
		t.Errorf("Expected generic file view URL to equal download URL, got %q and %q", doc.ViewURL, doc.DownloadURL)
	}
}

func TestService_Build_InsertsBothCasings(t *testing.T) {
	lister := &mockLister{
		files: []models.RemoteFile{
			{ID: "pdf-1", Name: "Resume.PDF", MimeType: "application/pdf"},
		},
	}

	service := NewService(lister, "folder", "key")
	service.Build()

	for _, name := range []string{"Resume.PDF", "resume.pdf"} {
		if _, ok := service.Resolve(name); !ok {
			t.Errorf("Expected %q to resolve", name)
		}
	}
}

func TestService_Build_MissingConfig(t *testing.T) {
	lister := &mockLister{}

	service := NewService(lister, "", "")
	if !service.Loading() {
		t.Error("Expected loading to be true before Build")
	}

	service.Build()

	if service.Loading() {
		t.Error("Expected loading to be false after Build")
	}
	if service.Err() != nil {
		t.Errorf("Expected missing config to degrade silently, got error %v", service.Err())
	}
	if lister.calls != 0 {
		t.Errorf("Expected no listing call without config, got %d", lister.calls)
	}
	if _, ok := service.Resolve("resume.pdf"); ok {
		t.Error("Expected empty index to resolve nothing")
	}
	if len(service.Assets()) != 0 {
		t.Error("Expected empty asset list")
	}
}

func TestService_Build_ListingFailure(t *testing.T) {
	lister := &mockLister{err: errors.New("upstream unavailable")}

	service := NewService(lister, "folder", "key")
	service.Build()

	if service.Loading() {
		t.Error("Expected loading to be false after failed Build")
	}
	if service.Err() == nil {
		t.Error("Expected build error to be recorded")
	}
	if _, ok := service.Resolve("anything"); ok {
		t.Error("Expected empty index after failed build")
	}
}

func TestService_Assets_SortedAndDeduplicated(t *testing.T) {
	lister := &mockLister{
		files: []models.RemoteFile{
			{ID: "b", Name: "Beta.png", MimeType: "image/png"},
			{ID: "a", Name: "Alpha.png", MimeType: "image/png"},
		},
	}

	service := NewService(lister, "folder", "key")
	service.Build()

	assets := service.Assets()
	if len(assets) != 2 {
		t.Fatalf("Expected 2 distinct assets, got %d", len(assets))
	}
	if assets[0].Name != "Alpha.png" || assets[1].Name != "Beta.png" {
		t.Errorf("Expected assets sorted by name, got %q then %q", assets[0].Name, assets[1].Name)
	}
}
