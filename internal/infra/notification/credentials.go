package notification

import (
	"context"
	"net/url"
	"path"
	"strings"

	"pushrelay/internal/errors"

	"gocloud.dev/blob"
	// Bucket drivers for file:// and gs:// credential URLs
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// isBlobURL reports whether credentialsPath names a blob object rather than a local file.
func isBlobURL(credentialsPath string) bool {
	return strings.Contains(credentialsPath, "://")
}

// splitBlobURL separates "scheme://bucket/dir/key.json" into the bucket URL and the object key.
// For file:// URLs the bucket is the directory holding the object.
func splitBlobURL(rawURL string) (bucketURL, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.Wrapf(err, "invalid credentials URL %q", rawURL)
	}

	if u.Scheme == "file" {
		dir, file := path.Split(u.Path)
		if file == "" {
			return "", "", errors.Errorf("credentials URL %q has no object key", rawURL)
		}
		u.Path = strings.TrimSuffix(dir, "/")
		if u.Path == "" {
			u.Path = "/"
		}

		return u.String(), file, nil
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", errors.Errorf("credentials URL %q has no object key", rawURL)
	}
	u.Path = ""

	return u.String(), key, nil
}

// readBlobCredentials downloads a service account JSON document from a blob bucket.
func readBlobCredentials(ctx context.Context, rawURL string) ([]byte, error) {
	bucketURL, key, err := splitBlobURL(rawURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open credentials bucket %s", bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read credentials object %s", key)
	}

	return data, nil
}
