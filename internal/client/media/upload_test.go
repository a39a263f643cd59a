package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidvault/voidvault-cli/internal/client/api"
)

type fakeSigner struct {
	ticket  *api.SignedUploadTicket
	err     error
	purpose string
}

func (f *fakeSigner) SignUpload(_ context.Context, purpose string) (*api.SignedUploadTicket, error) {
	f.purpose = purpose
	return f.ticket, f.err
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func testTicket() *api.SignedUploadTicket {
	return &api.SignedUploadTicket{
		CloudName: "demo",
		APIKey:    "key-1",
		Timestamp: 1700000000,
		Folder:    "posts",
		Signature: "sig-1",
	}
}

func TestDetectKind(t *testing.T) {
	image := writeTempFile(t, "pic.png", []byte{0x89, 'P', 'N', 'G'})
	video := writeTempFile(t, "clip.mp4", []byte("mp4data"))
	text := writeTempFile(t, "notes.txt", []byte("plain text"))

	kind, err := DetectKind(image)
	require.NoError(t, err)
	assert.Equal(t, KindImage, kind)

	kind, err = DetectKind(video)
	require.NoError(t, err)
	assert.Equal(t, KindVideo, kind)

	_, err = DetectKind(text)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestUploadPostMedia_SendsTicketFieldsDirectlyToHost(t *testing.T) {
	var form map[string]string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		form = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			form[name] = values[0]
		}
		json.NewEncoder(w).Encode(map[string]string{
			"secure_url":    "https://cdn.test/demo/posts/abc.png",
			"resource_type": "image",
		})
	}))
	defer srv.Close()

	signer := &fakeSigner{ticket: testTicket()}
	up := NewUploader(signer, WithHost(srv.URL))

	file := writeTempFile(t, "pic.png", []byte("pngdata"))
	got, err := up.UploadPostMedia(context.Background(), file, KindImage, nil)
	require.NoError(t, err)

	assert.Equal(t, "post", signer.purpose)
	assert.Equal(t, "/demo/auto/upload", path, "upload goes to the signed cloud's auto endpoint")
	assert.Equal(t, "key-1", form["api_key"])
	assert.Equal(t, "1700000000", form["timestamp"])
	assert.Equal(t, "posts", form["folder"])
	assert.Equal(t, "sig-1", form["signature"])
	assert.Equal(t, "https://cdn.test/demo/posts/abc.png", got.SecureURL)
	assert.Equal(t, KindImage, got.Kind)
}

func TestUploadPostMedia_KindMismatchRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"secure_url":    "https://cdn.test/x.mp4",
			"resource_type": "video",
		})
	}))
	defer srv.Close()

	up := NewUploader(&fakeSigner{ticket: testTicket()}, WithHost(srv.URL))
	file := writeTempFile(t, "pic.png", []byte("pngdata"))

	_, err := up.UploadPostMedia(context.Background(), file, KindImage, nil)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestUploadPostMedia_ReportsProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"secure_url":    "https://cdn.test/x.png",
			"resource_type": "image",
		})
	}))
	defer srv.Close()

	up := NewUploader(&fakeSigner{ticket: testTicket()}, WithHost(srv.URL))
	file := writeTempFile(t, "pic.png", make([]byte, 64*1024))

	var last int
	_, err := up.UploadPostMedia(context.Background(), file, KindImage, func(percent int) {
		assert.GreaterOrEqual(t, percent, last, "progress must be monotonic")
		last = percent
	})
	require.NoError(t, err)
	assert.Equal(t, 100, last)
}

func TestUpload_HostErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	up := NewUploader(&fakeSigner{ticket: testTicket()}, WithHost(srv.URL))
	file := writeTempFile(t, "pic.png", []byte("pngdata"))

	_, err := up.UploadProfileImage(context.Background(), file, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload failed (401)")
}

func TestUpload_MissingSecureURLFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resource_type":"image"}`))
	}))
	defer srv.Close()

	up := NewUploader(&fakeSigner{ticket: testTicket()}, WithHost(srv.URL))
	file := writeTempFile(t, "pic.png", []byte("pngdata"))

	_, err := up.UploadProfileImage(context.Background(), file, nil)
	require.Error(t, err)
}
