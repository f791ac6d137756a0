package userreg

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

var errUnsupportedPicture = errors.New("unsupported profile picture type")

var pictureTypes = []string{"image/jpeg", "image/png"}

// Picture is what is kept of an uploaded profile picture.
type Picture struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// inspectPicture sniffs the upload's content; the client supplied
// Content-Type and file extension are not trusted.
func inspectPicture(fh *multipart.FileHeader) (*Picture, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open profile picture: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect profile picture type: %w", err)
	}

	if !mimetype.EqualsAny(mtype.String(), pictureTypes...) {
		return nil, fmt.Errorf("%w: %s", errUnsupportedPicture, mtype.String())
	}

	return &Picture{
		Filename:    fh.Filename,
		ContentType: mtype.String(),
		Size:        fh.Size,
	}, nil
}
