package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	helper "inovasi_backend/internals/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func countFiles(t *testing.T, s *LocalStore) int {
	t.Helper()
	n := 0
	require.NoError(t, s.Walk(context.Background(), func(string, time.Time) error {
		n++
		return nil
	}))
	return n
}

func TestCleanRel(t *testing.T) {
	for _, bad := range []string{"", "/etc/passwd", "../x", "a/../../x", ".."} {
		_, err := CleanRel(bad)
		assert.ErrorIs(t, err, ErrInvalidPath, bad)
	}
	got, err := CleanRel(`carousel\a.png`)
	require.NoError(t, err)
	assert.Equal(t, "carousel/a.png", got)
}

func TestPublicURL(t *testing.T) {
	old := PublicBase
	t.Cleanup(func() { PublicBase = old })

	PublicBase = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/carousel/a.png", PublicURL("carousel/a.png"))
	assert.Equal(t, "", PublicURL(""))
}

func TestSessionSaveAndCommit(t *testing.T) {
	store := newStore(t)
	sess := NewUploader(store).Begin(context.Background())
	defer sess.Rollback()

	rel, err := sess.Save(IndikatorPolicy, "profil-1", "alatKerja", fileHeader(t, "bukti.pdf", pdfBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "profil-1/"))
	assert.True(t, strings.HasSuffix(rel, ".pdf"))
	assert.NotContains(t, rel, "bukti", "nama file asli tidak dipakai")

	sess.Commit()
	sess.Rollback()
	_, err = os.Stat(filepath.Join(store.Root, filepath.FromSlash(rel)))
	assert.NoError(t, err)
}

func TestSessionRollbackRemovesWrittenFiles(t *testing.T) {
	store := newStore(t)
	sess := NewUploader(store).Begin(context.Background())

	for i := 0; i < 3; i++ {
		_, err := sess.Save(IndikatorPolicy, "p", "f", fileHeader(t, "a.pdf", pdfBytes))
		require.NoError(t, err)
	}
	_, err := sess.Save(IndikatorPolicy, "p", "bad", fileHeader(t, "a.exe", []byte("MZ bukan pdf sama sekali")))
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "bad", ve.Fields[0].Field)
	assert.Contains(t, ve.Fields[0].Message, "PDF, JPG, PNG")

	assert.Equal(t, 3, countFiles(t, store))
	sess.Rollback()
	assert.Equal(t, 0, countFiles(t, store))
}

func TestSessionCommitDeletesDiscarded(t *testing.T) {
	store := newStore(t)
	up := NewUploader(store)

	first := up.Begin(context.Background())
	old, err := first.Save(IndikatorPolicy, "p", "f", fileHeader(t, "a.pdf", pdfBytes))
	require.NoError(t, err)
	first.Commit()

	second := up.Begin(context.Background())
	repl, err := second.Save(IndikatorPolicy, "p", "f", fileHeader(t, "b.pdf", pdfBytes))
	require.NoError(t, err)
	second.Discard(old)
	second.Commit()

	var left []string
	require.NoError(t, store.Walk(context.Background(), func(rel string, _ time.Time) error {
		left = append(left, rel)
		return nil
	}))
	assert.Equal(t, []string{repl}, left)
}

func TestSessionRejectsOversizeAndEmpty(t *testing.T) {
	store := newStore(t)
	sess := NewUploader(store).Begin(context.Background())
	defer sess.Rollback()

	small := IndikatorPolicy
	small.MaxSize = 16
	_, err := sess.Save(small, "p", "f", fileHeader(t, "a.pdf", pdfBytes))
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields[0].Message, "Ukuran file maksimal")

	_, err = sess.Save(IndikatorPolicy, "p", "f", fileHeader(t, "a.pdf", nil))
	require.True(t, errors.As(err, &ve))

	_, err = sess.Save(IndikatorPolicy, "p", "f", nil)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "f wajib diunggah", ve.Fields[0].Message)
	assert.Equal(t, 0, countFiles(t, store))
}

func TestCarouselPolicyLimitsFilesAndResizes(t *testing.T) {
	store := newStore(t)
	sess := NewUploader(store).Begin(context.Background())
	defer sess.Rollback()

	p := CarouselPolicy(100, 50)
	rel, err := sess.Save(p, "carousel", "image", fileHeader(t, "a.png", pngBytes(t, 400, 100)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "carousel/carousel_"))

	f, err := os.Open(filepath.Join(store.Root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, 100)
	assert.LessOrEqual(t, cfg.Height, 50)

	_, err = sess.Save(p, "carousel", "image", fileHeader(t, "b.png", pngBytes(t, 10, 10)))
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve), "satu file per request")

	_, _, err = CarouselPolicy(100, 50).Detect(pdfBytes)
	assert.Error(t, err)
}

func TestNormalizeImageKeepsSmallImages(t *testing.T) {
	data := pngBytes(t, 20, 10)
	out, err := NormalizeImage(data, "image/png", 100, 100)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestRunOrphanReaper(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	for _, rel := range []string{"carousel/keep.png", "p/orphan.pdf", "p/fresh.pdf"} {
		require.NoError(t, store.Save(ctx, rel, bytes.NewReader(pdfBytes), ""))
	}
	old := time.Now().Add(-48 * time.Hour)
	for _, rel := range []string{"carousel/keep.png", "p/orphan.pdf"} {
		require.NoError(t, os.Chtimes(filepath.Join(store.Root, filepath.FromSlash(rel)), old, old))
	}
	refs := func(context.Context) (map[string]struct{}, error) {
		return map[string]struct{}{"carousel/keep.png": {}}, nil
	}

	got, err := RunOrphanReaper(ctx, store, refs, 24*time.Hour, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"p/orphan.pdf"}, got)
	assert.Equal(t, 3, countFiles(t, store), "dry run tidak menghapus")

	got, err = RunOrphanReaper(ctx, store, refs, 24*time.Hour, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"p/orphan.pdf"}, got)
	assert.Equal(t, 2, countFiles(t, store))
}

func TestStartOrphanReaperDisabledWithoutSchedule(t *testing.T) {
	c, err := StartOrphanReaper(newStore(t), nil, ReaperConfig{})
	assert.NoError(t, err)
	assert.Nil(t, c)
}
