package bs_clients

import (
	"Users2CSV/common"
	h "Users2CSV/helpers"
	"Users2CSV/lib"
	"bytes"
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"io"
	"time"
)

type S3Client struct{}

var s3Api *s3.Client

func getS3Api() (*s3.Client, error) {
	if s3Api != nil {
		return s3Api, nil
	}
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if common.Debug {
		// https://aws.github.io/aws-sdk-go-v2/docs/configuring-sdk/logging/
		cfg, err = config.LoadDefaultConfig(context.TODO(), config.WithClientLogMode(aws.LogRetries|aws.LogRequest))
	}
	if err != nil {
		return nil, errors.Wrap(err, "AWS configuration error")
	}
	s3Api = s3.NewFromConfig(cfg)
	return s3Api, nil
}

func splitS3Uri(uri string) (string, string, error) {
	bucket, key := lib.GetContainerAndKey(uri)
	if len(bucket) == 0 || len(key) == 0 {
		return "", "", errors.Errorf("expected s3://bucket/key but got '%s'", uri)
	}
	return bucket, key, nil
}

func (s S3Client) ReadPath(uri string) ([]byte, error) {
	if common.Debug {
		defer h.Elapsed(time.Now().UnixMilli(), "Read "+uri, int64(0))
	} else {
		// As S3, using *2
		defer h.Elapsed(time.Now().UnixMilli(), "Slow file read for key:"+uri, common.SlowMS*2)
	}
	bucket, key, err := splitS3Uri(uri)
	if err != nil {
		return nil, err
	}
	client, err := getS3Api()
	if err != nil {
		return nil, err
	}
	obj, err := client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		h.Log("DEBUG", fmt.Sprintf("GetObject for %s failed with %s.", uri, err.Error()))
		return nil, err
	}
	defer obj.Body.Close()
	return io.ReadAll(obj.Body)
}

func (s S3Client) WriteToPath(uri string, contents []byte) error {
	if common.Debug {
		defer h.Elapsed(time.Now().UnixMilli(), "Wrote "+uri, 0)
	} else {
		defer h.Elapsed(time.Now().UnixMilli(), "Slow file write for key:"+uri, common.SlowMS*2)
	}
	bucket, key, err := splitS3Uri(uri)
	if err != nil {
		return err
	}
	client, err := getS3Api()
	if err != nil {
		return err
	}
	resp, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(contents),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		h.Log("DEBUG", fmt.Sprintf("Key: %s. Resp: %v", uri, resp))
		return err
	}
	return nil
}
