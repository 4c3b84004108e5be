package storage

import (
	"fmt"
	"strings"
)

const s3Scheme = "s3://"

// Open returns the FileStore for an output location. Locations of the form
// s3://bucket[/prefix] map to an [S3Store] configured from cfg; anything else
// is treated as a local directory, which is created if missing.
func Open(location string, cfg S3Config) (FileStore, error) {
	if !strings.HasPrefix(location, s3Scheme) {
		return NewLocal(location)
	}
	bucket, prefix, err := ParseS3URI(location)
	if err != nil {
		return nil, err
	}
	return NewS3(NewS3Client(cfg), bucket, prefix), nil
}

// ParseS3URI splits s3://bucket/some/prefix into its bucket and prefix.
// Trailing slashes on the prefix are dropped.
func ParseS3URI(uri string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(uri, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("storage: %q is not an s3:// URI", uri)
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("storage: missing bucket in %q", uri)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}
