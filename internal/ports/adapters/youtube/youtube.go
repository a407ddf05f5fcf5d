// Package youtube uploads finished shorts through the YouTube Data API.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"time"

	"github.com/rohitk523/adk-project/internal/ports/adapters/googleauth"
	"github.com/rohitk523/adk-project/internal/ports/adapters/httpapi"
	"github.com/rohitk523/adk-project/internal/types"
)

const (
	DefaultUploadBaseURL = "https://www.googleapis.com"

	// People & Blogs.
	defaultCategoryID = "22"
	defaultVisibility = "public"

	watchURLFormat = "https://www.youtube.com/watch?v=%s"
)

// DefaultAllowedHosts is the base-URL allowlist used when config names none.
var DefaultAllowedHosts = []string{
	"www.googleapis.com",
	"youtube.googleapis.com",
	"oauth2.googleapis.com",
}

var defaultTags = []string{"shorts", "ai", "automation"}

type Adapter struct {
	creds     googleauth.Credentials
	exchanger *googleauth.Exchanger
	baseURL   string
	client    *http.Client
}

func New(creds googleauth.Credentials, tokenURL, uploadBaseURL string) *Adapter {
	return &Adapter{
		creds:     creds,
		exchanger: googleauth.New(tokenURL),
		baseURL:   httpapi.NormalizeBaseURL(uploadBaseURL, DefaultUploadBaseURL),
		client:    &http.Client{Timeout: 15 * time.Minute},
	}
}

type snippet struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CategoryID  string   `json:"categoryId"`
}

type status struct {
	PrivacyStatus           string `json:"privacyStatus"`
	SelfDeclaredMadeForKids bool   `json:"selfDeclaredMadeForKids"`
}

type videoResource struct {
	Snippet snippet `json:"snippet"`
	Status  status  `json:"status"`
}

// Upload authenticates with the stored refresh credential, performs a
// multipart upload carrying the media file and its metadata, and returns
// the assigned public identifier.
func (a *Adapter) Upload(ctx context.Context, path string, meta types.UploadMetadata) (types.UploadReceipt, error) {
	token, err := a.exchanger.AccessToken(ctx, a.creds)
	if err != nil {
		return types.UploadReceipt{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return types.UploadReceipt{}, fmt.Errorf("%w: open media file: %v", types.ErrUpload, err)
	}
	defer f.Close()

	body, contentType, err := buildMultipartBody(f, resourceFor(meta))
	if err != nil {
		return types.UploadReceipt{}, fmt.Errorf("%w: build upload body: %v", types.ErrUpload, err)
	}

	url := a.baseURL + "/upload/youtube/v3/videos?uploadType=multipart&part=snippet,status"
	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return types.UploadReceipt{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := a.client.Do(req)
	if err != nil {
		return types.UploadReceipt{}, fmt.Errorf("%w: upload call: %v", types.ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(resp.Body)
		return types.UploadReceipt{}, fmt.Errorf("%w: upload status %d: %s",
			types.ErrUpload, resp.StatusCode,
			httpapi.Truncate(httpapi.RedactSecrets(string(rb), token, a.creds.RefreshToken), 400))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.UploadReceipt{}, fmt.Errorf("%w: decode upload response: %v", types.ErrUpload, err)
	}
	if out.ID == "" {
		return types.UploadReceipt{}, fmt.Errorf("%w: upload response carried no video id", types.ErrUpload)
	}
	return types.UploadReceipt{
		VideoID: out.ID,
		URL:     fmt.Sprintf(watchURLFormat, out.ID),
	}, nil
}

func resourceFor(meta types.UploadMetadata) videoResource {
	tags := meta.Tags
	if len(tags) == 0 {
		tags = defaultTags
	}
	categoryID := meta.CategoryID
	if categoryID == "" {
		categoryID = defaultCategoryID
	}
	visibility := meta.Visibility
	if visibility == "" {
		visibility = defaultVisibility
	}
	return videoResource{
		Snippet: snippet{
			Title:       meta.Title,
			Description: meta.Description,
			Tags:        tags,
			CategoryID:  categoryID,
		},
		Status: status{
			PrivacyStatus:           visibility,
			SelfDeclaredMadeForKids: false,
		},
	}
}

// buildMultipartBody assembles a multipart/related body: one JSON metadata
// part followed by the raw video part.
func buildMultipartBody(media io.Reader, res videoResource) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaHdr := textproto.MIMEHeader{}
	metaHdr.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := w.CreatePart(metaHdr)
	if err != nil {
		return nil, "", err
	}
	if err := json.NewEncoder(metaPart).Encode(res); err != nil {
		return nil, "", err
	}

	mediaHdr := textproto.MIMEHeader{}
	mediaHdr.Set("Content-Type", "video/mp4")
	mediaPart, err := w.CreatePart(mediaHdr)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(mediaPart, media); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, "multipart/related; boundary=" + w.Boundary(), nil
}
