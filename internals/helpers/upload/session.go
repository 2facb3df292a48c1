package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path"
	"sync"
	"time"

	helper "inovasi_backend/internals/helpers"

	"github.com/google/uuid"
)

const sniffLen = 3072

// Uploader membuka Session per request. Aman dipakai bersama.
type Uploader struct {
	Store Store
}

func NewUploader(store Store) *Uploader {
	return &Uploader{Store: store}
}

// Delete menghapus file milik record yang sudah dihapus dari DB (best effort).
func (u *Uploader) Delete(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := u.Store.Delete(ctx, p); err != nil {
			log.Printf("[CLEANUP] gagal hapus %s: %v", p, err)
		}
	}
}

func (u *Uploader) DeleteDir(ctx context.Context, dir string) {
	if err := u.Store.DeleteDir(ctx, dir); err != nil {
		log.Printf("[CLEANUP] gagal hapus folder %s: %v", dir, err)
	}
}

// Begin membuka session. Pola pakai:
//
//	sess := up.Begin(ctx)
//	defer sess.Rollback()
//	... sess.Save(...) ... tulis DB ...
//	sess.Commit()
//
// Rollback setelah Commit tidak melakukan apa-apa.
func (u *Uploader) Begin(ctx context.Context) *Session {
	return &Session{ctx: ctx, store: u.Store, counts: map[string]int{}}
}

type Session struct {
	ctx     context.Context
	store   Store
	mu      sync.Mutex
	written []string
	discard []string
	counts  map[string]int
	done    bool
}

// Save memvalidasi lalu menulis satu file ke dir/<random><ext>, mengembalikan path relatif.
func (s *Session) Save(p Policy, dir, field string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", helper.NewValidationError(field, field+" wajib diunggah")
	}
	if p.MaxSize > 0 && fh.Size > p.MaxSize {
		return "", helper.NewValidationError(field, p.sizeMessage())
	}

	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return "", fmt.Errorf("upload session sudah ditutup")
	}
	if p.MaxFiles > 0 && s.counts[p.Name] >= p.MaxFiles {
		s.mu.Unlock()
		return "", helper.NewValidationError(field, fmt.Sprintf("Maksimal %d file per request", p.MaxFiles))
	}
	s.counts[p.Name]++
	s.mu.Unlock()

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("buka file %s: %w", field, err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("baca file %s: %w", field, err)
	}
	head = head[:n]
	if n == 0 {
		return "", helper.NewValidationError(field, "File kosong")
	}

	mime, ext, err := p.Detect(head)
	if err != nil {
		return "", helper.NewValidationError(field, err.Error())
	}

	// batas ukuran dicek ulang dari isi, bukan hanya header multipart
	var body io.Reader = io.LimitReader(io.MultiReader(bytes.NewReader(head), src), p.limit()+1)
	if p.Normalize != nil {
		raw, err := io.ReadAll(body)
		if err != nil {
			return "", fmt.Errorf("baca file %s: %w", field, err)
		}
		if p.MaxSize > 0 && int64(len(raw)) > p.MaxSize {
			return "", helper.NewValidationError(field, p.sizeMessage())
		}
		out, err := p.Normalize(raw, mime)
		if err != nil {
			return "", helper.NewValidationError(field, "Gambar tidak dapat diproses")
		}
		body = bytes.NewReader(out)
	} else {
		body = &limitedReader{r: body, max: p.MaxSize}
	}

	name := uuid.NewString() + ext
	if p.NamePrefix != "" {
		name = fmt.Sprintf("%s%d_%s%s", p.NamePrefix, time.Now().UnixMilli(), uuid.NewString(), ext)
	}
	rel, err := CleanRel(path.Join(dir, name))
	if err != nil {
		return "", err
	}

	if err := s.store.Save(s.ctx, rel, body, mime); err != nil {
		var tl *tooLargeError
		if errors.As(err, &tl) {
			return "", helper.NewValidationError(field, p.sizeMessage())
		}
		return "", fmt.Errorf("simpan file %s: %w", field, err)
	}

	s.mu.Lock()
	s.written = append(s.written, rel)
	s.mu.Unlock()
	return rel, nil
}

func (p Policy) limit() int64 {
	if p.MaxSize <= 0 {
		return 1<<62 - 1
	}
	return p.MaxSize
}

// Written mengembalikan path yang ditulis session ini.
func (s *Session) Written() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.written...)
}

// Discard menjadwalkan file lama untuk dihapus saat Commit.
func (s *Session) Discard(paths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		if p != "" {
			s.discard = append(s.discard, p)
		}
	}
}

// Commit mempertahankan file baru dan menghapus file yang di-Discard.
func (s *Session) Commit() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	discard := s.discard
	s.mu.Unlock()

	ctx := context.WithoutCancel(s.ctx)
	for _, p := range discard {
		if err := s.store.Delete(ctx, p); err != nil {
			log.Printf("[CLEANUP] gagal hapus file lama %s: %v", p, err)
		}
	}
}

// Rollback menghapus semua file yang ditulis session ini. No-op setelah Commit.
func (s *Session) Rollback() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	written := s.written
	s.mu.Unlock()

	if len(written) == 0 {
		return
	}
	ctx := context.WithoutCancel(s.ctx)
	for _, p := range written {
		if err := s.store.Delete(ctx, p); err != nil {
			log.Printf("[CLEANUP] rollback gagal hapus %s: %v", p, err)
		}
	}
	log.Printf("[CLEANUP] rollback %d file upload", len(written))
}

type tooLargeError struct{}

func (*tooLargeError) Error() string { return "file terlalu besar" }

// limitedReader gagal (bukan memotong) kalau isi melebihi max.
type limitedReader struct {
	r   io.Reader
	max int64
	n   int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.n += int64(n)
	if l.max > 0 && l.n > l.max {
		return n, &tooLargeError{}
	}
	return n, err
}
