package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCloudinaryURL is returned when CLOUDINARY_URL is not a cloudinary:// URL.
	ErrInvalidCloudinaryURL = errors.New("CLOUDINARY_URL must use the cloudinary:// scheme")

	// ErrUnsupportedImageSource is returned for anything other than a base64
	// data URI or an http(s) URL. The SDK would otherwise read local files.
	ErrUnsupportedImageSource = errors.New("image must be a base64 data URI or an http(s) URL")
)

// UploadedImage describes an image stored on the CDN.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Cloudinary uploads and destroys images on Cloudinary.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary creates a Cloudinary client from a CLOUDINARY_URL, or from
// the individual credentials when the URL is empty.
func NewCloudinary(cloudinaryURL, cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)

	if cloudinaryURL != "" {
		u, parseErr := url.Parse(cloudinaryURL)
		if parseErr != nil || u.Scheme != "cloudinary" {
			return nil, ErrInvalidCloudinaryURL
		}
		cld, err = cloudinary.NewFromURL(cloudinaryURL)
	} else {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}
	if err != nil {
		return nil, err
	}

	return &Cloudinary{cld: cld}, nil
}

// Upload stores file, a base64 data URI or an http(s) URL, in folder.
func (c *Cloudinary) Upload(ctx context.Context, file, folder string) (*UploadedImage, error) {
	if !IsRemoteImageSource(file) {
		return nil, ErrUnsupportedImageSource
	}

	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	if res.Error.Message != "" {
		return nil, errors.New(res.Error.Message)
	}

	return &UploadedImage{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
	}, nil
}

// Destroy deletes an image by public id. Deleting a missing image is not an error.
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}

	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}

	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("unexpected destroy result %q", res.Result)
	}

	return nil
}

// IsRemoteImageSource reports whether s is a base64 data URI or an absolute
// http(s) URL.
func IsRemoteImageSource(s string) bool {
	if api.IsBase64Data(s) {
		return true
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}
