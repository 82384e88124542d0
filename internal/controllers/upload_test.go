package controllers_test

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/upload"
	"github.com/tesoreria-paralelo/backend/test"
)

var pngContent = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func (suite *TestSuiteStandard) TestUploadImage() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	body, headers := test.MultipartFile(suite.T(), "image/png", pngContent)
	headers["Authorization"] = s.header()["Authorization"]

	r := test.Request(suite.controller, suite.T(), http.MethodPost, test.BaseURL+"/upload-image", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.UploadResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngContent), response.Data.ImageURL)
}

func (suite *TestSuiteStandard) TestUploadImageFails() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	tests := []struct {
		name        string
		contentType string
		content     []byte
		err         error
	}{
		{"Text file", "text/plain", []byte("hello"), upload.ErrInvalidFileType},
		{"Declared PNG, content text", "image/png", []byte("hello"), upload.ErrInvalidFileType},
		{"Too large", "image/png", append(bytes.Clone(pngContent), []byte(strings.Repeat("a", 2048))...), upload.ErrFileTooLarge},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.MultipartFile(t, tt.contentType, tt.content)
			headers["Authorization"] = s.header()["Authorization"]

			r := test.Request(suite.controller, t, http.MethodPost, test.BaseURL+"/upload-image", body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestUploadImageNoFile() {
	s := suite.createTestSession(suite.T(), controllers.RegisterEditable{})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, test.BaseURL+"/upload-image", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(httputil.ErrNoFilePost.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
