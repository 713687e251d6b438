// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides the S3-compatible asset host behind the media
// endpoints: upload, listing, deletion, and server-side import of remote
// images. It wraps the AWS SDK v2 and is configured for path-style access
// (required by CEPH/Hetzner).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// uploadPrefix namespaces media objects inside the bucket so unrelated
// objects never show up in the library listing.
const uploadPrefix = "cms_uploads/"

// listLimit caps the media library listing.
const listLimit = 100

// Object describes one stored media file as the dashboard library shows
// it. PublicID is the object key, which delete requests send back.
type Object struct {
	PublicID  string    `json:"publicId"`
	URL       string    `json:"url"`
	Bytes     int64     `json:"bytes"`
	Format    string    `json:"format,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client wraps an S3 client for media operations on a single public
// bucket.
type Client struct {
	s3        *s3.Client
	http      *http.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for public files
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without an asset host; handlers report the absence per request.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		http:      &http.Client{Timeout: 30 * time.Second},
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores a media object under the upload prefix with public-read
// ACL and returns its library entry.
func (c *Client) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*Object, error) {
	key := uploadPrefix + uniqueName(filename)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 upload %s: %w", key, err)
	}

	return &Object{
		PublicID:  key,
		URL:       c.FileURL(key),
		Bytes:     size,
		Format:    strings.TrimPrefix(path.Ext(key), "."),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// List returns the media library: up to 100 uploaded objects, newest
// first.
func (c *Client) List(ctx context.Context) ([]Object, error) {
	out, err := c.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucket),
		Prefix:  aws.String(uploadPrefix),
		MaxKeys: aws.Int32(listLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 list %s: %w", c.bucket, err)
	}

	objects := make([]Object, 0, len(out.Contents))
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		o := Object{
			PublicID: key,
			URL:      c.FileURL(key),
			Bytes:    aws.ToInt64(obj.Size),
			Format:   strings.TrimPrefix(path.Ext(key), "."),
		}
		if obj.LastModified != nil {
			o.CreatedAt = *obj.LastModified
		}
		objects = append(objects, o)
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].CreatedAt.After(objects[j].CreatedAt)
	})
	return objects, nil
}

// Delete removes a media object by its public id (the object key).
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// ImportFromURL downloads a remote image and stores it as an upload, so
// stock photos end up on the same asset host as direct uploads.
func (c *Client) ImportFromURL(ctx context.Context, imageURL string) (*Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("import from url: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("import from url: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("import from url: fetch returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("import from url: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	name := path.Base(strings.SplitN(imageURL, "?", 2)[0])
	if path.Ext(name) == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			name += exts[0]
		}
	}

	return c.Upload(ctx, name, contentType, bytes.NewReader(data), int64(len(data)))
}

// FileURL returns the public URL for an object key. Uses the configured
// public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// ExtractKey extracts the object key from a public file URL. Returns the
// key and true if the URL belongs to this asset host.
func (c *Client) ExtractKey(rawURL string) (string, bool) {
	if c.publicURL != "" {
		prefix := c.publicURL + "/"
		if strings.HasPrefix(rawURL, prefix) {
			return rawURL[len(prefix):], true
		}
	}

	prefix := c.endpoint + "/" + c.bucket + "/"
	if strings.HasPrefix(rawURL, prefix) {
		return rawURL[len(prefix):], true
	}

	return "", false
}

// uniqueName prefixes a filename with a timestamp so repeated uploads of
// the same file never overwrite each other.
func uniqueName(filename string) string {
	base := path.Base(filename)
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), base)
}
