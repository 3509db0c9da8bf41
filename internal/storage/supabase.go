package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore keeps blobs as objects in a single Supabase storage bucket.
type SupabaseStore struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseClient creates a storage client for the given project URL and
// service role key. The URL is the project base URL; the storage API path
// is appended here.
func NewSupabaseClient(projectURL, serviceKey string) *storage_go.Client {
	base := strings.TrimRight(projectURL, "/")
	if !strings.HasSuffix(base, "/storage/v1") {
		base = base + "/storage/v1"
	}
	return storage_go.NewClient(base, serviceKey, nil)
}

// NewSupabaseStore creates a store over one bucket.
func NewSupabaseStore(client *storage_go.Client, bucket string) *SupabaseStore {
	return &SupabaseStore{client: client, bucket: bucket}
}

// Read downloads the named object, or reports ok=false if it does not exist.
// Existence is checked with a listing first so a download failure is never
// mistaken for an empty store.
func (s *SupabaseStore) Read(_ context.Context, name string) ([]byte, bool, error) {
	exists, err := s.exists(name)
	if err != nil {
		return nil, false, fmt.Errorf("listing bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, false, nil
	}

	data, err := s.client.DownloadFile(s.bucket, name)
	if err != nil {
		return nil, false, fmt.Errorf("downloading %s from bucket %s: %w", name, s.bucket, err)
	}
	return data, true, nil
}

// Write uploads data to the named object, replacing any existing content.
func (s *SupabaseStore) Write(_ context.Context, name string, data []byte) error {
	contentType := "text/plain"
	upsert := true
	_, err := s.client.UploadFile(s.bucket, name, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("uploading %s to bucket %s: %w", name, s.bucket, err)
	}
	return nil
}

// Remove deletes the named object.
func (s *SupabaseStore) Remove(_ context.Context, name string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{name}); err != nil {
		return fmt.Errorf("removing %s from bucket %s: %w", name, s.bucket, err)
	}
	return nil
}

func (s *SupabaseStore) exists(name string) (bool, error) {
	objects, err := s.client.ListFiles(s.bucket, "", storage_go.FileSearchOptions{})
	if err != nil {
		return false, err
	}
	for _, obj := range objects {
		if obj.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Provisioner bundles a storage client with the buckets the application
// needs, for the one-time setup path.
type Provisioner struct {
	client  *storage_go.Client
	buckets []string
}

// NewProvisioner creates a provisioner for the given buckets.
func NewProvisioner(client *storage_go.Client, buckets ...string) *Provisioner {
	return &Provisioner{client: client, buckets: buckets}
}

// Setup idempotently creates all configured buckets.
func (p *Provisioner) Setup() error {
	return EnsureBuckets(p.client, p.buckets...)
}

// Buckets returns the bucket names this provisioner manages.
func (p *Provisioner) Buckets() []string {
	return p.buckets
}

// EnsureBuckets creates the named buckets if they do not already exist.
// Idempotent; run once at startup or via the setup-storage command, never
// from request handlers.
func EnsureBuckets(client *storage_go.Client, names ...string) error {
	for _, name := range names {
		if _, err := client.GetBucket(name); err == nil {
			log.Printf("Bucket %s already exists", name)
			continue
		}
		if _, err := client.CreateBucket(name, storage_go.BucketOptions{Public: false}); err != nil {
			return fmt.Errorf("creating bucket %s: %w", name, err)
		}
		log.Printf("Created bucket %s", name)
	}
	return nil
}
