package metadata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/logger"
)

// ErrUnsupportedPhoto is returned when photo bytes are not an image
var ErrUnsupportedPhoto = errors.New("photo is not an image")

// Uploader stores listing content and returns content-addressed URIs
//
//go:generate mockgen -source=uploader.go -destination=../mocks/uploader.go -package=mocks -mock_names=Uploader=MockUploader
type Uploader interface {
	// UploadPhoto stores an image and returns its URI and detected content type
	UploadPhoto(ctx context.Context, photo []byte) (string, string, error)
	// UploadDocument stores the canonical form of a metadata document and returns its URI
	UploadDocument(ctx context.Context, doc *Document) (string, error)
}

type ipfsAddResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

type ipfsUploader struct {
	apiURL     string
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewIPFSUploader creates an uploader talking to the IPFS HTTP API at apiURL
func NewIPFSUploader(apiURL string, httpClient adapter.HTTPClient, json adapter.JSON) Uploader {
	return &ipfsUploader{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		httpClient: httpClient,
		json:       json,
	}
}

// DetectPhotoType returns the MIME type of photo, rejecting anything that is not an image
func DetectPhotoType(photo []byte) (string, error) {
	mtype := mimetype.Detect(photo)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrUnsupportedPhoto, mtype.String())
	}
	return mtype.String(), nil
}

func (u *ipfsUploader) UploadPhoto(ctx context.Context, photo []byte) (string, string, error) {
	contentType, err := DetectPhotoType(photo)
	if err != nil {
		return "", "", err
	}

	uri, err := u.add(ctx, "photo"+mimetype.Lookup(contentType).Extension(), contentType, photo)
	if err != nil {
		return "", "", fmt.Errorf("failed to upload photo: %w", err)
	}

	logger.InfoCtx(ctx, "Uploaded photo", zap.String("uri", uri), zap.String("mimeType", contentType))
	return uri, contentType, nil
}

func (u *ipfsUploader) UploadDocument(ctx context.Context, doc *Document) (string, error) {
	data, err := doc.Canonical(u.json)
	if err != nil {
		return "", err
	}

	uri, err := u.add(ctx, "metadata.json", "application/json", data)
	if err != nil {
		return "", fmt.Errorf("failed to upload metadata: %w", err)
	}

	logger.InfoCtx(ctx, "Uploaded metadata", zap.String("uri", uri))
	return uri, nil
}

// add posts one file to /api/v0/add and returns ipfs://<cid>
func (u *ipfsUploader) add(ctx context.Context, filename string, contentType string, content []byte) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return "", fmt.Errorf("failed to write multipart part: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := u.apiURL + "/api/v0/add?cid-version=1&pin=true"
	respBody, err := u.httpClient.Post(ctx, url, w.FormDataContentType(), body.Bytes())
	if err != nil {
		return "", err
	}

	var resp ipfsAddResponse
	if err := u.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode IPFS response: %w", err)
	}
	if resp.Hash == "" {
		return "", errors.New("IPFS response carries no hash")
	}

	return "ipfs://" + resp.Hash, nil
}
