// Package media implements the two-step upload protocol: the backend signs
// a short-lived ticket, then the file bytes go straight to the asset host.
// The backend never relays the bytes.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/voidvault/voidvault-cli/internal/client/api"
)

// DefaultUploadHost is the asset host's upload endpoint prefix. Tests and
// self-hosted deployments can point the Uploader elsewhere.
const DefaultUploadHost = "https://api.cloudinary.com/v1_1"

// Kind is the asset kind the caller intends to upload.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

var (
	ErrUnsupportedFile = errors.New("media: file is neither an image nor a video")

	// ErrKindMismatch is returned when the asset host reports a different
	// resource type than the one inferred from the chosen file. The upload
	// must be retried, never silently accepted.
	ErrKindMismatch = errors.New("media: uploaded media type mismatch")
)

// Uploaded describes a completed upload.
type Uploaded struct {
	SecureURL string
	Kind      Kind
}

// ProgressFunc receives the upload progress as a 0-100 percentage.
type ProgressFunc func(percent int)

// Signer is the slice of the API client the uploader needs.
type Signer interface {
	SignUpload(ctx context.Context, purpose string) (*api.SignedUploadTicket, error)
}

// Uploader streams files to the asset host using backend-signed tickets.
type Uploader struct {
	signer Signer
	http   *http.Client
	host   string
}

func NewUploader(signer Signer, opts ...UploaderOption) *Uploader {
	u := &Uploader{signer: signer, http: http.DefaultClient, host: DefaultUploadHost}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type UploaderOption func(*Uploader)

// WithHost overrides the asset host endpoint prefix.
func WithHost(host string) UploaderOption {
	return func(u *Uploader) { u.host = strings.TrimRight(host, "/") }
}

// WithHTTPClient overrides the HTTP client used for the direct upload.
func WithHTTPClient(c *http.Client) UploaderOption {
	return func(u *Uploader) { u.http = c }
}

// kindByExt covers the common cases directly; mime.TypeByExtension depends
// on the host's mime.types and misses .mp4 on minimal systems.
var kindByExt = map[string]Kind{
	".png": KindImage, ".jpg": KindImage, ".jpeg": KindImage,
	".gif": KindImage, ".webp": KindImage,
	".mp4": KindVideo, ".mov": KindVideo, ".webm": KindVideo, ".m4v": KindVideo,
}

// DetectKind infers the asset kind from the file's MIME type (by extension,
// falling back to content sniffing). Anything that is not an image or video
// is rejected before any network call.
func DetectKind(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if kind, ok := kindByExt[ext]; ok {
		return kind, nil
	}

	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		head := make([]byte, 512)
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("media: open %s: %w", path, err)
		}
		n, _ := io.ReadFull(f, head)
		f.Close()
		mimeType = http.DetectContentType(head[:n])
	}

	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage, nil
	case strings.HasPrefix(mimeType, "video/"):
		return KindVideo, nil
	}
	return "", ErrUnsupportedFile
}

// UploadPostMedia uploads a post attachment. The server decides the final
// resource type ("auto" endpoint); a result that disagrees with kind fails
// with ErrKindMismatch.
func (u *Uploader) UploadPostMedia(ctx context.Context, path string, kind Kind, progress ProgressFunc) (*Uploaded, error) {
	payload, err := u.upload(ctx, path, "post", "auto", progress)
	if err != nil {
		return nil, err
	}

	got := KindImage
	if strings.EqualFold(payload.ResourceType, string(KindVideo)) {
		got = KindVideo
	}
	if got != kind {
		return nil, ErrKindMismatch
	}
	return &Uploaded{SecureURL: payload.SecureURL, Kind: got}, nil
}

// UploadProfileImage uploads an avatar and returns its URL.
func (u *Uploader) UploadProfileImage(ctx context.Context, path string, progress ProgressFunc) (string, error) {
	payload, err := u.upload(ctx, path, "profile", "image", progress)
	if err != nil {
		return "", err
	}
	return payload.SecureURL, nil
}

type hostResponse struct {
	SecureURL    string `json:"secure_url"`
	ResourceType string `json:"resource_type"`
}

func (u *Uploader) upload(ctx context.Context, path, purpose, resource string, progress ProgressFunc) (*hostResponse, error) {
	ticket, err := u.signer.SignUpload(ctx, purpose)
	if err != nil {
		return nil, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("media: read %s: %w", path, err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("media: build form: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return nil, fmt.Errorf("media: build form: %w", err)
	}
	fields := map[string]string{
		"api_key":   ticket.APIKey,
		"timestamp": strconv.FormatInt(ticket.Timestamp, 10),
		"folder":    ticket.Folder,
		"signature": ticket.Signature,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("media: build form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("media: build form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", u.host, url.PathEscape(ticket.CloudName), resource)
	total := int64(body.Len())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		endpoint, &progressReader{r: &body, total: total, report: progress})
	if err != nil {
		return nil, fmt.Errorf("media: build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.ContentLength = total

	resp, err := u.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media: upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("media: upload failed (%d)", resp.StatusCode)
	}

	var payload hostResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("media: upload failed: %w", err)
	}
	if payload.SecureURL == "" {
		return nil, errors.New("media: upload failed: no asset url in response")
	}
	return &payload, nil
}

// progressReader reports how much of the request body has been consumed.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	last   int
	report ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.sent += int64(n)
	if p.report != nil && p.total > 0 {
		percent := int(p.sent * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent != p.last {
			p.last = percent
			p.report(percent)
		}
	}
	return n, err
}
