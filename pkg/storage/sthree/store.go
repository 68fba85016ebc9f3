// Package sthree implements datasets on AWS S3
package sthree

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/dsgibbons/lance/pkg/storage"
	"github.com/dsgibbons/lance/pkg/storage/status"
)

const pageSize = 1000

// Option for the s3 store
type Option func(*s3FS)

// Bucket sets the bucket for this store
func Bucket(bucket string) Option {
	return func(fs *s3FS) {
		fs.bucket = bucket
	}
}

// AWSConfig sets some AWS configuration for this store
func AWSConfig(cfg *aws.Config) Option {
	return func(fs *s3FS) {
		fs.awsConfig = cfg
	}
}

// New creates a new s3 backed storage
func New(opts ...Option) storage.Store {
	fs := new(s3FS)
	for _, apply := range opts {
		apply(fs)
	}

	fs.s3 = s3.New(session.Must(session.NewSession(fs.awsConfig)))
	fs.downloader = s3manager.NewDownloaderWithClient(fs.s3)
	return fs
}

type s3FS struct {
	bucket     string
	awsConfig  *aws.Config
	s3         *s3.S3
	downloader *s3manager.Downloader
}

func (s *s3FS) String() string {
	return "s3://" + s.bucket
}

func (s *s3FS) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.s3.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return true, nil
}

func (s *s3FS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.s3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return obj.Body, nil
}

// s3ReaderAt adapts ranged S3 reads to io.ReaderAt
type s3ReaderAt struct {
	ctx    context.Context
	s3     *s3.S3
	bucket string
	key    string
}

func (r s3ReaderAt) ReadAt(p []byte, offset int64) (int, error) {
	rng := fmt.Sprintf("bytes=%d-%d", offset, offset+int64(len(p))-1)
	obj, err := r.s3.GetObjectWithContext(r.ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
		Range:  aws.String(rng),
	})
	if err != nil {
		return 0, toSentinelErrors(err)
	}
	defer obj.Body.Close()
	return io.ReadFull(obj.Body, p)
}

func (s *s3FS) GetAt(ctx context.Context, key string) (io.ReaderAt, error) {
	return s3ReaderAt{ctx: ctx, s3: s.s3, bucket: s.bucket, key: key}, nil
}

func (s *s3FS) GetAttr(ctx context.Context, key string) (storage.Attributes, error) {
	head, err := s.s3.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return storage.Attributes{}, toSentinelErrors(err)
	}
	attrs := storage.Attributes{
		Size: aws.Int64Value(head.ContentLength),
	}
	if head.LastModified != nil {
		attrs.Updated = *head.LastModified
	}
	return attrs, nil
}

func (s *s3FS) Put(ctx context.Context, key string, rdr io.Reader, doesNotExist bool) error {
	// PutObject needs a seekable body: tag and manifest metadata objects
	// are small, so buffering is fine
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(buf),
	}
	if doesNotExist {
		// conditional write: S3 rejects the put with 412 when the key
		// already exists
		input.IfNoneMatch = aws.String("*")
	}
	if _, err = s.s3.PutObjectWithContext(ctx, input); err != nil {
		return toSentinelErrors(err)
	}
	return nil
}

func (s *s3FS) Delete(ctx context.Context, key string) error {
	// DeleteObject is idempotent on S3, an existence check keeps missing
	// keys distinguishable. The check is not atomic with the delete: an
	// object vanishing in between reports success rather than not-exists
	// (general-purpose buckets have no conditional delete to close the
	// window; localfs and GCS report the race as not-exists)
	has, err := s.Has(ctx, key)
	if err != nil {
		return err
	}
	if !has {
		return status.ErrNotExists
	}
	_, err = s.s3.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return toSentinelErrors(err)
}

func (s *s3FS) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	eachPage := func(page *s3.ListObjectsV2Output, more bool) bool {
		for _, obj := range page.Contents {
			key := aws.StringValue(obj.Key)
			if key != "" {
				keys = append(keys, key)
			}
		}
		return more
	}
	params := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if err := s.s3.ListObjectsV2PagesWithContext(ctx, params, eachPage); err != nil {
		return nil, toSentinelErrors(err)
	}
	return keys, nil
}

func (s *s3FS) KeysPrefix(ctx context.Context, pageToken, prefix, delimiter string, count int) ([]string, string, error) {
	if count <= 0 || count > pageSize {
		count = pageSize
	}
	params := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int64(int64(count)),
	}
	if delimiter != "" {
		params.Delimiter = aws.String(delimiter)
	}
	if pageToken != "" {
		params.ContinuationToken = aws.String(pageToken)
	}
	out, err := s.s3.ListObjectsV2WithContext(ctx, params)
	if err != nil {
		return nil, "", toSentinelErrors(err)
	}
	keys := make([]string, 0, len(out.Contents)+len(out.CommonPrefixes))
	for _, obj := range out.Contents {
		keys = append(keys, aws.StringValue(obj.Key))
	}
	for _, pre := range out.CommonPrefixes {
		keys = append(keys, aws.StringValue(pre.Prefix))
	}
	return keys, aws.StringValue(out.NextContinuationToken), nil
}

func (s *s3FS) Clear(ctx context.Context) error {
	return status.ErrNotImplemented
}
