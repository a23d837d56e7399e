package storage

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

// CredentialsFromFile loads a service account key for the proof bucket and
// scopes it to object read/write. Without a key file the client falls back to
// application default credentials.
func CredentialsFromFile(ctx context.Context, path string) (option.ClientOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, gcs.DevstorageReadWriteScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse storage credentials: %w", err)
	}
	return option.WithCredentials(creds), nil
}
