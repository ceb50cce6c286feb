package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, field string, files map[string][]byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func doUpload(t *testing.T, srv *testServer, path, token string, body io.Reader, contentType string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, srv.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestUploadRoundTrip(t *testing.T) {
	srv := startServer(t)
	user := registerAndLogin(t, srv, "shutterbug@example.com")

	content := []byte("not really a png but nobody sniffs")
	body, contentType := multipartBody(t, "file", map[string][]byte{"dinner.png": content})

	code, env := doUpload(t, srv, "/api/v1/upload", user.AccessToken, body, contentType)
	require.Equal(t, http.StatusOK, code)

	var uploaded struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &uploaded))
	require.True(t, strings.HasPrefix(uploaded.Path, "/uploads/"), uploaded.Path)
	require.True(t, strings.HasSuffix(uploaded.Path, ".png"), uploaded.Path)

	// The stored file is served back byte for byte.
	resp, err := srv.Client().Get(srv.URL + uploaded.Path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	served, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, content, served)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	srv := startServer(t)
	user := registerAndLogin(t, srv, "hacker@example.com")

	body, contentType := multipartBody(t, "file", map[string][]byte{"payload.exe": []byte("MZ")})

	code, env := doUpload(t, srv, "/api/v1/upload", user.AccessToken, body, contentType)
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "unsupported file type", env.Errors.Detail)
}

func TestUploadMultipleIsAllOrNothing(t *testing.T) {
	srv := startServer(t)
	user := registerAndLogin(t, srv, "batch@example.com")

	body, contentType := multipartBody(t, "files", map[string][]byte{
		"one.jpg":  []byte("first"),
		"two.webp": []byte("second"),
		"evil.sh":  []byte("#!/bin/sh"),
	})

	code, env := doUpload(t, srv, "/api/v1/upload-multiple", user.AccessToken, body, contentType)
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "unsupported file type", env.Errors.Detail)

	body, contentType = multipartBody(t, "files", map[string][]byte{
		"one.jpg":  []byte("first"),
		"two.webp": []byte("second"),
	})

	code, env = doUpload(t, srv, "/api/v1/upload-multiple", user.AccessToken, body, contentType)
	require.Equal(t, http.StatusOK, code)

	var uploaded struct {
		Paths []string `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &uploaded))
	require.Len(t, uploaded.Paths, 2)
}
