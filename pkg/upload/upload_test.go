package upload

import (
	"testing"
)

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"render.png", "image/png"},
		{"out/render_123.ppm", "image/x-portable-pixmap"},
		{"a.tiff", "image/tiff"},
		{"a.tif", "image/tiff"},
		{"a.bmp", "image/bmp"},
		{"notes.txt", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := ContentTypeFor(tt.path); got != tt.want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{Bucket: "renders", Region: "us-east-1"}, false},
		{"missing bucket", Config{Region: "us-east-1"}, true},
		{"missing region", Config{Bucket: "renders"}, true},
		{"empty", Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")
	t.Setenv("S3_ENDPOINT", "https://minio.local:9000")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("S3_BUCKET", "renders")

	cfg := ConfigFromEnv()
	want := Config{
		AccessKey: "ak",
		SecretKey: "sk",
		Endpoint:  "https://minio.local:9000",
		Region:    "eu-west-1",
		Bucket:    "renders",
	}
	if cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestNewUploader(t *testing.T) {
	uploader, err := NewUploader(Config{
		AccessKey: "ak",
		SecretKey: "sk",
		Region:    "us-east-1",
		Bucket:    "renders",
	})
	if err != nil {
		t.Fatalf("NewUploader returned %v", err)
	}
	if uploader.bucket != "renders" {
		t.Errorf("bucket = %q, want %q", uploader.bucket, "renders")
	}
	if uploader.client == nil {
		t.Error("uploader has no client")
	}
}

func TestNewUploaderRejectsIncompleteConfig(t *testing.T) {
	if _, err := NewUploader(Config{Bucket: "renders"}); err == nil {
		t.Error("expected an error for a config with no region")
	}
}
