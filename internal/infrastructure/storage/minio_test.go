package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		bucket    string
		wantKey   string
		wantOK    bool
	}{
		{
			name:      "upload reference",
			reference: "http://localhost:9000/catalog/products/3f1a.jpg",
			bucket:    "catalog",
			wantKey:   "products/3f1a.jpg",
			wantOK:    true,
		},
		{
			name:      "https reference",
			reference: "https://cdn.internal/catalog/products/a.png",
			bucket:    "catalog",
			wantKey:   "products/a.png",
			wantOK:    true,
		},
		{
			name:      "different bucket",
			reference: "http://localhost:9000/other/products/a.png",
			bucket:    "catalog",
			wantOK:    false,
		},
		{
			name:      "externally hosted image",
			reference: "https://example.com/images/a.png",
			bucket:    "catalog",
			wantOK:    false,
		},
		{
			name:      "bucket root without key",
			reference: "http://localhost:9000/catalog/",
			bucket:    "catalog",
			wantOK:    false,
		},
		{
			name:      "not a url",
			reference: "://broken",
			bucket:    "catalog",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := objectKey(tt.reference, tt.bucket)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, key)
			}
		})
	}
}
