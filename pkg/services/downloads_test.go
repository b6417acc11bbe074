package services

import (
	"errors"
	"testing"
	"time"
)

func TestDownloadStorePutGet(t *testing.T) {
	store := NewDownloadStore(time.Minute)

	download, err := store.Put("Resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if download.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, err := store.Get(download.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Filename != "Resume.pdf" || string(got.Data) != "%PDF-1.4" || got.ContentType != "application/pdf" {
		t.Fatalf("unexpected download: %+v", got)
	}

	other, err := store.Put("Resume.pdf", "application/pdf", nil)
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if other.ID == download.ID {
		t.Fatal("ids must be unique per Put")
	}
}

func TestDownloadStoreUnknownID(t *testing.T) {
	store := NewDownloadStore(time.Minute)
	if _, err := store.Get("missing"); !errors.Is(err, ErrDownloadNotFound) {
		t.Fatalf("err = %v, want ErrDownloadNotFound", err)
	}
}

func TestDownloadStoreExpiry(t *testing.T) {
	store := NewDownloadStore(time.Hour)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	download, err := store.Put("Cover_Letter.pdf", "application/pdf", []byte("x"))
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := store.Get(download.ID); !errors.Is(err, ErrDownloadExpired) {
		t.Fatalf("err = %v, want ErrDownloadExpired", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expired download should be removed, len = %d", store.Len())
	}
}

func TestDownloadStoreCleanupGoroutine(t *testing.T) {
	store := NewDownloadStore(10 * time.Millisecond)
	if _, err := store.Put("Resume.pdf", "application/pdf", []byte("x")); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("download was not cleaned up")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
