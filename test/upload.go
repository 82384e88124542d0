package test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// MultipartFile builds a multipart body with content in the form field "file"
//
// The body is returned as a buffer and a map for the HTTP request headers
func MultipartFile(t *testing.T, contentType string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="image"`)
	h.Set("Content-Type", contentType)

	w, err := mw.CreatePart(h)
	require.Nil(t, err)

	_, err = w.Write(content)
	require.Nil(t, err)

	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
