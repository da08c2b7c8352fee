package storage

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicLinks(t *testing.T) {
	s, err := NewAwsS3(S3Config{Bucket: "foodshare", Region: "ap-southeast-1"})
	require.NoError(t, err)

	link := s.GetPublicLinkKey("food-items/food-item-1.png")
	assert.Equal(t, "https://foodshare.s3.ap-southeast-1.amazonaws.com/food-items/food-item-1.png", link)
	assert.Equal(t, "food-items/food-item-1.png", s.GetObjectKeyFromLink(link))
	assert.Equal(t, "", s.GetObjectKeyFromLink("https://example.com/pic.png"))
}

func TestCustomEndpointLinks(t *testing.T) {
	s := &awsS3{bucket: "foodshare", publicURL: publicURL(S3Config{Bucket: "foodshare", Endpoint: "http://localhost:9000/"})}
	assert.Equal(t, "http://localhost:9000/foodshare/a.png", s.GetPublicLinkKey("a.png"))
}

func TestUploadWithoutBucket(t *testing.T) {
	s, err := NewAwsS3(S3Config{})
	require.NoError(t, err)

	file := &multipart.FileHeader{Filename: "pic.png", Header: textproto.MIMEHeader{"Content-Type": {"image/png"}}}
	_, err = s.UploadFile("food-item-1", file, "food-items", AllowImage...)
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, s.DeleteFile("food-items/food-item-1.png"), ErrStorageDisabled)
}
