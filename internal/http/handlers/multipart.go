package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"

	"shipment-photo-dashboard/internal/apperr"
	"shipment-photo-dashboard/internal/domain"
)

const (
	fileField     = "file"
	recordIDField = "recordId"

	maxFieldBytes   = 1 << 10
	bodyOverheadCap = 1 << 20
)

var acceptedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// spooledFile is an accepted upload part buffered on local disk.
type spooledFile struct {
	file        *os.File
	name        string
	contentType string
	size        int64
}

func (s *spooledFile) uploadFile() domain.UploadFile {
	return domain.UploadFile{
		Name:        s.name,
		ContentType: s.contentType,
		Size:        s.size,
		Body:        s.file,
	}
}

func (s *spooledFile) remove() error {
	closeErr := s.file.Close()
	if err := os.Remove(s.file.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return closeErr
}

type uploadForm struct {
	recordID string
	file     *spooledFile
}

func (f *uploadForm) cleanup() error {
	if f == nil || f.file == nil {
		return nil
	}
	err := f.file.remove()
	f.file = nil
	return err
}

// parseUploadForm streams the multipart body. Only the first "file" part
// with an accepted image type is kept; other parts are drained and
// dropped. Each kept part is capped at maxFile bytes.
func parseUploadForm(w http.ResponseWriter, r *http.Request, maxFile int64) (*uploadForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*maxFile+bodyOverheadCap)

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrMalformedRequest, err)
	}

	form := &uploadForm{}
	seenRecordID := false
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return form, nil
		}
		if err != nil {
			_ = form.cleanup()
			return nil, bodyError(err)
		}

		switch {
		case part.FileName() == "" && part.FormName() == recordIDField && !seenRecordID:
			seenRecordID = true
			form.recordID, err = readField(part)
		case part.FileName() != "" && part.FormName() == fileField && form.file == nil && acceptedImage(part):
			form.file, err = spool(part, maxFile)
		default:
			_, err = io.Copy(io.Discard, part)
			if err != nil {
				err = bodyError(err)
			}
		}
		_ = part.Close()
		if err != nil {
			_ = form.cleanup()
			return nil, err
		}
	}
}

func acceptedImage(p *multipart.Part) bool {
	mt, _, err := mime.ParseMediaType(p.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	_, ok := acceptedImageTypes[strings.ToLower(mt)]
	return ok
}

func readField(p *multipart.Part) (string, error) {
	b, err := io.ReadAll(io.LimitReader(p, maxFieldBytes+1))
	if err != nil {
		return "", bodyError(err)
	}
	if len(b) > maxFieldBytes {
		// overlong values can never be a valid id
		if _, err := io.Copy(io.Discard, p); err != nil {
			return "", bodyError(err)
		}
		return "", nil
	}
	return string(b), nil
}

func spool(p *multipart.Part, maxFile int64) (*spooledFile, error) {
	tmp, err := os.CreateTemp("", "photo-upload-*")
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	sf := &spooledFile{file: tmp, name: p.FileName(), contentType: p.Header.Get("Content-Type")}

	n, err := io.Copy(tmp, io.LimitReader(p, maxFile+1))
	if err != nil {
		_ = sf.remove()
		return nil, bodyError(err)
	}
	if n > maxFile {
		_ = sf.remove()
		return nil, apperr.ErrFileTooLarge
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		_ = sf.remove()
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	sf.size = n
	return sf, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.ErrFileTooLarge
	}
	return fmt.Errorf("%w: %v", apperr.ErrMalformedRequest, err)
}

// parseRecordID accepts a trimmed positive base-10 integer.
func parseRecordID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidRecordID
	}
	return id, nil
}
