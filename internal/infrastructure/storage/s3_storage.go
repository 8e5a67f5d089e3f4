package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage is the off-box StorageStrategy. Video binaries stay on the
// local filesystem regardless of driver (the merge, ffmpeg and
// streaming paths need real files); S3 holds the thumbnail assets.
type S3Storage struct {
	client     *s3.Client
	bucketName string
	region     string
}

func NewS3Storage(bucketName, region string) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config could not be loaded: %w", err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     region,
	}, nil
}

func (s *S3Storage) Save(src io.Reader, folder, filename string) (string, error) {
	key := filename
	if folder != "" {
		key = folder + "/" + filename
	}

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   src,
	})
	if err != nil {
		return "", fmt.Errorf("S3 upload failed: %w", err)
	}

	return key, nil
}

func (s *S3Storage) Open(relPath string) (io.ReadCloser, error) {
	resp, err := s.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(relPath),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Spool to a temp file so callers can seek and re-read.
	tmpFile, err := os.CreateTemp("", "s3download-*")
	if err != nil {
		return nil, fmt.Errorf("temp file could not be created: %w", err)
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return nil, fmt.Errorf("S3 object could not be copied: %w", err)
	}

	if _, err := tmpFile.Seek(0, io.SeekStart); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return nil, fmt.Errorf("temp file could not be rewound: %w", err)
	}

	return tmpFile, nil
}

func (s *S3Storage) Delete(relPath string) error {
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(relPath),
	})
	return err
}
