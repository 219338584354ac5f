package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	s := &s3Uploader{}

	key := s.objectKey("monthly report.pdf")
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, "-monthly_report.pdf"))
	assert.NotContains(t, key, " ")

	// Directory components in the submitted name are stripped.
	key = s.objectKey("../../etc/passwd")
	assert.True(t, strings.HasSuffix(key, "-passwd"))
	assert.NotContains(t, key, "..")

	// Two uploads of the same file get distinct keys.
	assert.NotEqual(t, s.objectKey("a.txt"), s.objectKey("a.txt"))
}

func TestObjectURL(t *testing.T) {
	withEndpoint := &s3Uploader{bucketName: "media", endpoint: "https://minio.local:9000/", region: "us-east-1"}
	assert.Equal(t,
		"https://minio.local:9000/media/uploads/2026/01/x.pdf",
		withEndpoint.objectURL("uploads/2026/01/x.pdf"))

	aws := &s3Uploader{bucketName: "media", region: "eu-west-1"}
	assert.Equal(t,
		"https://media.s3.eu-west-1.amazonaws.com/uploads/2026/01/x.pdf",
		aws.objectURL("uploads/2026/01/x.pdf"))
}
