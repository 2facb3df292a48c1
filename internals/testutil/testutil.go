// Package testutil menyiapkan DB sqlite in-memory, fixture, dan app Fiber untuk test.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	database "inovasi_backend/internals/databases"
	indikatorModel "inovasi_backend/internals/features/inovasi/indikator_inovasi/model"
	profilModel "inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	authService "inovasi_backend/internals/features/users/auth/service"
	userModel "inovasi_backend/internals/features/users/user/model"
	helper "inovasi_backend/internals/helpers"
	"inovasi_backend/internals/helpers/upload"
	routes "inovasi_backend/internals/route"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	TestSecret = "test-secret"
	// bcrypt.MinCost supaya test cepat
	TestCost = 4
)

// NewDB membuka sqlite in-memory baru per test dan menjalankan migrasi.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func NewTokens(t testing.TB) *authService.TokenService {
	t.Helper()
	ts, err := authService.NewTokenService(TestSecret, 24*time.Hour)
	require.NoError(t, err)
	return ts
}

// Env adalah app lengkap (semua route) di atas DB dan folder upload sementara.
type Env struct {
	DB         *gorm.DB
	App        *fiber.App
	Tokens     *authService.TokenService
	Store      *upload.LocalStore
	UploadRoot string
}

func NewEnv(t testing.TB) *Env {
	t.Helper()
	db := NewDB(t)
	tokens := NewTokens(t)

	root := t.TempDir()
	store, err := upload.NewLocalStore(root)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
		BodyLimit:    200 * 1024 * 1024,
	})
	routes.SetupRoutes(app, routes.Deps{
		DB:             db,
		Tokens:         tokens,
		Uploader:       upload.NewUploader(store),
		CarouselPolicy: upload.CarouselPolicy(1920, 1080),
	})

	return &Env{DB: db, App: app, Tokens: tokens, Store: store, UploadRoot: root}
}

/* =========================
   FIXTURES
   ========================= */

func CreateUser(t testing.TB, db *gorm.DB, username, password, role, status string) *userModel.UserModel {
	t.Helper()
	hash, err := authService.HashPassword(password, TestCost)
	require.NoError(t, err)
	u := &userModel.UserModel{
		Username: username,
		Password: hash,
		Nama:     "Nama " + username,
		Role:     role,
		Status:   status,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateProfil(t testing.TB, db *gorm.DB, ownerID uuid.UUID, nama string) *profilModel.ProfilInovasiModel {
	t.Helper()
	p := &profilModel.ProfilInovasiModel{
		NamaInovasi:      nama,
		Inovator:         "Dinas Uji",
		JenisInovasi:     profilModel.JenisDigital,
		BentukInovasi:    "Aplikasi",
		TanggalUjiCoba:   datatypes.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		TanggalPenerapan: datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		RancangBangun:    strings.Repeat("r", 300),
		TujuanInovasi:    strings.Repeat("t", 10),
		ManfaatInovasi:   strings.Repeat("m", 10),
		HasilInovasi:     strings.Repeat("h", 10),
		UserID:           ownerID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

// CreateIndikator menulis 19 file PDF ke store lalu menyimpan record indikatornya.
func (e *Env) CreateIndikator(t testing.TB, profilID uuid.UUID) *indikatorModel.IndikatorInovasiModel {
	t.Helper()
	m := &indikatorModel.IndikatorInovasiModel{
		ProfilInovasiID:       profilID,
		KualitasInovasiDaerah: "https://youtu.be/abc123",
	}
	for _, ef := range indikatorModel.EvidenceFields {
		rel := profilID.String() + "/" + uuid.NewString() + ".pdf"
		require.NoError(t, e.Store.Save(context.Background(), rel, bytes.NewReader(PDF()), "application/pdf"))
		*ef.Ptr(m) = rel
	}
	require.NoError(t, e.DB.Create(m).Error)
	return m
}

// Token menerbitkan JWT valid untuk user.
func (e *Env) Token(t testing.TB, u *userModel.UserModel) string {
	t.Helper()
	tok, _, err := e.Tokens.Issue(authService.TokenClaims{UserID: u.ID, Username: u.Username, Role: u.Role})
	require.NoError(t, err)
	return tok
}

/* =========================
   REQUEST HELPERS
   ========================= */

// Response adalah envelope JSON yang sudah di-decode.
type Response struct {
	Status  int              `json:"-"`
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    any              `json:"data"`
	Errors  []map[string]any `json:"errors"`
}

func (r *Response) DataMap() map[string]any {
	m, _ := r.Data.(map[string]any)
	return m
}

func (r *Response) HasFieldError(field string) bool {
	for _, e := range r.Errors {
		if e["field"] == field {
			return true
		}
	}
	return false
}

func (e *Env) Do(t testing.TB, req *http.Request) *Response {
	t.Helper()
	res, err := e.App.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	out := &Response{Status: res.StatusCode}
	if len(body) > 0 {
		require.NoError(t, sonic.Unmarshal(body, out), string(body))
	}
	return out
}

func JSONRequest(t testing.TB, method, path, token string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// File adalah satu bagian file di request multipart.
type File struct {
	Name    string
	Content []byte
}

func MultipartRequest(t testing.TB, method, path, token string, fields map[string]string, files map[string]File) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// PDF: isi minimal yang dikenali sebagai application/pdf.
func PDF() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
}

// PNG membuat gambar PNG w×h.
func PNG(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{B: 180, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// CountFiles menghitung file biasa di bawah root.
func CountFiles(t testing.TB, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}
