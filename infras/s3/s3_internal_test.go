package s3

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"gomoto/config"
	"gomoto/infras/otel/mocks"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put    *s3.PutObjectInput
	delete *s3.DeleteObjectInput
	err    error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params

	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.delete = params

	return &s3.DeleteObjectOutput{}, f.err
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newTestS3(api objectAPI) *s3Impl {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "gomoto-assets"
	cfg.External.S3.PublicDomain = "https://cdn.gomoto.test"
	cfg.External.S3.APIEndpoint = "https://s3.gomoto.test"

	return &s3Impl{client: api, config: cfg, otel: mocks.NewOtel()}
}

func TestUploadFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newTestS3(api)

	header := &multipart.FileHeader{Filename: "front.png", Header: textproto.MIMEHeader{"Content-Type": {"image/png"}}}
	file := memFile{bytes.NewReader([]byte("png-bytes"))}

	url, err := svc.UploadFile(context.Background(), "vehicle/abc", file, header, "front.png")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.gomoto.test/vehicle/abc/front.png", url)
	assert.Equal(t, "vehicle/abc/front.png", *api.put.Key)
	assert.Equal(t, "gomoto-assets", *api.put.Bucket)
	assert.Equal(t, "image/png", *api.put.ContentType)
	assert.Equal(t, int64(len("png-bytes")), *api.put.ContentLength)
}

func TestUploadFile_Error(t *testing.T) {
	svc := newTestS3(&fakeObjectAPI{err: errors.New("denied")})

	header := &multipart.FileHeader{Filename: "front.png", Header: textproto.MIMEHeader{}}

	_, err := svc.UploadFile(context.Background(), "vehicle", memFile{bytes.NewReader(nil)}, header, "front.png")
	assert.Error(t, err)
}

func TestDeleteFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newTestS3(api)

	require.NoError(t, svc.DeleteFile(context.Background(), "vehicle/abc/front.png"))
	assert.Equal(t, "vehicle/abc/front.png", *api.delete.Key)
}

func TestGetObjectKeyFromURL(t *testing.T) {
	svc := newTestS3(&fakeObjectAPI{})

	tests := map[string]string{
		"https://cdn.gomoto.test/vehicle/abc/front.png":             "vehicle/abc/front.png",
		"https://s3.gomoto.test/gomoto-assets/vehicle/abc/rear.png": "vehicle/abc/rear.png",
		"https://elsewhere.test/vehicle/abc/front.png":              "",
		"https://cdn.gomoto.test/":                                  "",
	}

	for url, want := range tests {
		assert.Equal(t, want, svc.GetObjectKeyFromURL(url), url)
	}
}
