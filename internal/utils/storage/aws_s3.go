package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"Api-Recipes/internal/utils"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

	ErrInvalidContentType = errors.New("invalid content type")
)

type (
	AwsS3 interface {
		UploadFile(file *multipart.FileHeader, directory string, contentTypes ...string) (string, error)
		DeleteFile(key string) error
		DeleteByURL(url string) error
		GetPublicLinkKey(key string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	client := s3.New(s3.Options{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		),
	})

	return &awsS3{
		client: client,
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

func (a *awsS3) UploadFile(file *multipart.FileHeader, directory string, contentTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(contentTypes) > 0 {
		allowed := false
		for _, ct := range contentTypes {
			if ct == contentType {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", ErrInvalidContentType
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", directory, uuid.NewString(), filepath.Ext(file.Filename))

	_, err = a.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(file.Size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

func (a *awsS3) DeleteFile(key string) error {
	_, err := a.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (a *awsS3) DeleteByURL(url string) error {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	return a.DeleteFile(strings.TrimPrefix(url, prefix))
}

func (a *awsS3) GetPublicLinkKey(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)
}
