// Copyright (c) 2026 Kinodex. All rights reserved.

package poster_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinodex/kinodex/internal/platform/apperr"
	"github.com/kinodex/kinodex/internal/platform/dberr"
	"github.com/kinodex/kinodex/internal/poster"
)

// fakeRepository keeps poster rows in memory.
type fakeRepository struct {
	rows map[string]*poster.Poster
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[string]*poster.Poster{}}
}

func (f *fakeRepository) FindByImdbID(_ context.Context, imdbID string) (*poster.Poster, error) {
	record, ok := f.rows[imdbID]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return record, nil
}

func (f *fakeRepository) Upsert(_ context.Context, record *poster.Poster) error {
	f.rows[record.ImdbID] = record
	return nil
}

func newDiskService(t *testing.T) (*poster.Service, *fakeRepository, string) {
	t.Helper()
	dir := t.TempDir()
	files, err := poster.NewDiskFileStore(dir)
	require.NoError(t, err)
	repository := newFakeRepository()
	return poster.NewService(repository, files), repository, dir
}

/*
TestService_Upload verifies that an upload writes the blob to disk as
<imdbID>.png and upserts the poster row.
*/
func TestService_Upload(t *testing.T) {
	service, repository, dir := newDiskService(t)

	record, err := service.Upload(context.Background(), "tt0113277", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "tt0113277", record.ImdbID)
	assert.Equal(t, "tt0113277.png", record.AssetPath)

	content, err := os.ReadFile(dir + "/tt0113277.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	stored, ok := repository.rows["tt0113277"]
	require.True(t, ok)
	assert.Equal(t, "tt0113277.png", stored.AssetPath)
}

/*
TestService_Upload_Replace checks that re-uploading swaps the blob in place
without leaving the old bytes behind.
*/
func TestService_Upload_Replace(t *testing.T) {
	service, _, dir := newDiskService(t)

	_, err := service.Upload(context.Background(), "tt0113277", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = service.Upload(context.Background(), "tt0113277", strings.NewReader("second"))
	require.NoError(t, err)

	content, err := os.ReadFile(dir + "/tt0113277.png")
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp upload files must not accumulate")
}

/*
TestService_Resolve covers the lookup path: a stored poster resolves to a
servable file, while missing rows and dangling rows both yield 404.
*/
func TestService_Resolve(t *testing.T) {
	service, repository, dir := newDiskService(t)

	_, err := service.Upload(context.Background(), "tt0113277", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	t.Run("stored_poster", func(t *testing.T) {
		path, err := service.Resolve(context.Background(), "tt0113277")
		require.NoError(t, err)
		assert.Equal(t, dir+"/tt0113277.png", path)
	})

	t.Run("never_uploaded", func(t *testing.T) {
		_, err := service.Resolve(context.Background(), "tt9999999")
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "NOT_FOUND", ae.Code)
		assert.Equal(t, "Poster not found: tt9999999.", ae.Message)
	})

	t.Run("dangling_row", func(t *testing.T) {
		require.NoError(t, os.Remove(dir+"/tt0113277.png"))
		_, err := service.Resolve(context.Background(), "tt0113277")
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
		_, ok := repository.rows["tt0113277"]
		assert.True(t, ok, "the row is left intact; only serving fails")
	})
}

/*
TestDiskFileStore_PathTraversal verifies that asset names cannot escape the
poster directory.
*/
func TestDiskFileStore_PathTraversal(t *testing.T) {
	dir := t.TempDir()
	files, err := poster.NewDiskFileStore(dir)
	require.NoError(t, err)

	assetPath, err := files.Save(context.Background(), "../../etc/passwd", strings.NewReader("nope"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", assetPath)

	_, err = os.Stat(dir + "/passwd")
	assert.NoError(t, err, "the flattened name must land inside the store root")
}
