package gallery

import (
	"context"
	"errors"
	"testing"

	"flickgrid/internal/domain"
)

// fakeClient counts calls and returns canned results.
type fakeClient struct {
	searchResult *domain.SearchResultSet
	searchErr    error
	imageResult  []byte
	imageErr     error

	searchCalls int
	imageCalls  int
}

func (f *fakeClient) Search(ctx context.Context, term string) (*domain.SearchResultSet, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResult, nil
}

func (f *fakeClient) FetchLargeImage(ctx context.Context, desc domain.PhotoDescriptor) ([]byte, error) {
	f.imageCalls++
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	return f.imageResult, nil
}

func TestServiceSearchPrependsResult(t *testing.T) {
	client := &fakeClient{searchResult: photoSet("cats", "1", "2")}
	svc := NewService(client, NewStore(), nil)

	set, err := svc.Search(context.Background(), "cats")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(set.Photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(set.Photos))
	}

	if svc.Store().SectionCount() != 1 {
		t.Fatalf("SectionCount() = %d, want 1", svc.Store().SectionCount())
	}
	got, _ := svc.Store().Section(0)
	if got != set {
		t.Error("the delivered set was not the one stored")
	}
}

func TestServiceSearchFailureLeavesStoreUnmodified(t *testing.T) {
	client := &fakeClient{searchErr: domain.ErrAPIFailure}
	svc := NewService(client, NewStore(), nil)

	_, err := svc.Search(context.Background(), "cats")
	if !errors.Is(err, domain.ErrAPIFailure) {
		t.Fatalf("Search() error = %v, want ErrAPIFailure", err)
	}
	if svc.Store().SectionCount() != 0 {
		t.Errorf("store was modified by a failed search")
	}
}

func TestLoadLargeImageAttachesOnce(t *testing.T) {
	client := &fakeClient{imageResult: []byte("large-bytes")}
	svc := NewService(client, NewStore(), nil)
	photo := domain.NewPhoto(domain.PhotoDescriptor{ID: "1"}, "")

	buf, err := svc.LoadLargeImage(context.Background(), photo)
	if err != nil {
		t.Fatalf("LoadLargeImage() error = %v", err)
	}
	if string(buf) != "large-bytes" {
		t.Errorf("got %q, want %q", buf, "large-bytes")
	}
	if photo.LargeImage() == nil {
		t.Error("large image not attached to the photo")
	}

	// A loaded photo is served from its buffer without another fetch.
	if _, err := svc.LoadLargeImage(context.Background(), photo); err != nil {
		t.Fatalf("second LoadLargeImage() error = %v", err)
	}
	if client.imageCalls != 1 {
		t.Errorf("client fetched %d times, want 1", client.imageCalls)
	}
}

func TestLoadLargeImageFailure(t *testing.T) {
	client := &fakeClient{imageErr: domain.ErrImageFetch}
	svc := NewService(client, NewStore(), nil)
	photo := domain.NewPhoto(domain.PhotoDescriptor{ID: "1"}, "")

	_, err := svc.LoadLargeImage(context.Background(), photo)
	if !errors.Is(err, domain.ErrImageFetch) {
		t.Fatalf("LoadLargeImage() error = %v, want ErrImageFetch", err)
	}
	if photo.LargeImage() != nil {
		t.Error("failed fetch must not attach a buffer")
	}
}

func TestServiceMoveItem(t *testing.T) {
	client := &fakeClient{}
	store := NewStore()
	store.Prepend(photoSet("a", "x", "y", "z"))
	svc := NewService(client, store, nil)

	if err := svc.MoveItem(0, 2, 0, 0); err != nil {
		t.Fatalf("MoveItem() error = %v", err)
	}
	assertIDs(t, sectionIDs(t, store, 0), []string{"z", "x", "y"})

	if err := svc.MoveItem(0, 9, 0, 0); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Fatalf("MoveItem() error = %v, want ErrIndexOutOfRange", err)
	}
}
