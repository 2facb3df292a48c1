package controller_test

import (
	"net/http"
	"sync"
	"testing"

	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/inovasi/indikator_inovasi/model"
	profilModel "inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	userModel "inovasi_backend/internals/features/users/user/model"
	"inovasi_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	env    *testutil.Env
	admin  *userModel.UserModel
	opdA   *userModel.UserModel
	opdB   *userModel.UserModel
	profil *profilModel.ProfilInovasiModel
}

func setup(t *testing.T) fixture {
	env := testutil.NewEnv(t)
	f := fixture{
		env:   env,
		admin: testutil.CreateUser(t, env.DB, "admin", "Admin@123", constants.RoleAdmin, constants.StatusAktif),
		opdA:  testutil.CreateUser(t, env.DB, "opd_a", "Opd1@123", constants.RoleOPD, constants.StatusAktif),
		opdB:  testutil.CreateUser(t, env.DB, "opd_b", "Opd1@123", constants.RoleOPD, constants.StatusAktif),
	}
	f.profil = testutil.CreateProfil(t, env.DB, f.opdA.ID, "Inovasi A")
	return f
}

func allFiles() map[string]testutil.File {
	files := map[string]testutil.File{}
	for _, ef := range model.EvidenceFields {
		files[ef.Name] = testutil.File{Name: ef.Name + ".pdf", Content: testutil.PDF()}
	}
	return files
}

func (f fixture) create(t *testing.T, token string, fields map[string]string, files map[string]testutil.File) *testutil.Response {
	return f.env.Do(t, testutil.MultipartRequest(t, "POST", "/api/indikator-inovasi", token, fields, files))
}

func (f fixture) fields() map[string]string {
	return map[string]string{
		"profilInovasiId":       f.profil.ID.String(),
		"kualitasInovasiDaerah": "https://www.youtube.com/watch?v=abc123",
	}
}

func TestCreateIndikator(t *testing.T) {
	f := setup(t)
	tok := f.env.Token(t, f.opdA)

	res := f.create(t, tok, f.fields(), allFiles())
	require.Equal(t, 201, res.Status, res.Message)
	data := res.DataMap()
	assert.Equal(t, f.profil.ID.String(), data["profilInovasiId"])
	assert.Equal(t, "Inovasi A", data["profilInovasi"].(map[string]any)["namaInovasi"])
	assert.Equal(t, len(model.EvidenceFields), testutil.CountFiles(t, f.env.UploadRoot))

	var saved model.IndikatorInovasiModel
	require.NoError(t, f.env.DB.First(&saved, "profil_inovasi_id = ?", f.profil.ID).Error)
	for _, p := range saved.FilePaths() {
		assert.Regexp(t, "^"+f.profil.ID.String()+`/[0-9a-f-]{36}\.pdf$`, p)
	}
	assert.Len(t, saved.FilePaths(), len(model.EvidenceFields))

	// sekali per profil
	res = f.create(t, tok, f.fields(), allFiles())
	assert.Equal(t, 409, res.Status)
	assert.Equal(t, len(model.EvidenceFields), testutil.CountFiles(t, f.env.UploadRoot))

	res = f.env.Do(t, testutil.JSONRequest(t, "GET", "/api/profil-inovasi/"+f.profil.ID.String(), tok, nil))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "COMPLETE", res.DataMap()["status"].(map[string]any)["stage"])
}

func TestCreateIndikatorValidation(t *testing.T) {
	f := setup(t)
	tok := f.env.Token(t, f.opdA)

	files := allFiles()
	delete(files, "replikasi")
	res := f.create(t, tok, f.fields(), files)
	assert.Equal(t, 400, res.Status)
	assert.True(t, res.HasFieldError("replikasi"))

	fields := f.fields()
	fields["kualitasInovasiDaerah"] = "https://vimeo.com/123"
	res = f.create(t, tok, fields, allFiles())
	assert.Equal(t, 400, res.Status)
	assert.True(t, res.HasFieldError("kualitasInovasiDaerah"))

	fields = f.fields()
	fields["profilInovasiId"] = "bukan-uuid"
	res = f.create(t, tok, fields, allFiles())
	assert.Equal(t, 400, res.Status)
	assert.True(t, res.HasFieldError("profilInovasiId"))

	files = allFiles()
	files["lampiranLain"] = testutil.File{Name: "x.pdf", Content: testutil.PDF()}
	res = f.create(t, tok, f.fields(), files)
	assert.Equal(t, 400, res.Status)

	assert.Equal(t, 0, testutil.CountFiles(t, f.env.UploadRoot))
}

func TestCreateIndikatorPartialFailureLeavesNoFiles(t *testing.T) {
	f := setup(t)
	files := allFiles()
	last := model.EvidenceFields[len(model.EvidenceFields)-1].Name
	files[last] = testutil.File{Name: "virus.exe", Content: []byte("MZ\x90\x00 ini bukan dokumen")}

	res := f.create(t, f.env.Token(t, f.opdA), f.fields(), files)
	require.Equal(t, 400, res.Status)
	assert.True(t, res.HasFieldError(last))
	assert.Equal(t, 0, testutil.CountFiles(t, f.env.UploadRoot))

	var n int64
	f.env.DB.Model(&model.IndikatorInovasiModel{}).Count(&n)
	assert.Zero(t, n)
}

func TestCreateIndikatorPermission(t *testing.T) {
	f := setup(t)

	res := f.create(t, f.env.Token(t, f.opdB), f.fields(), allFiles())
	assert.Equal(t, 403, res.Status)
	assert.Equal(t, 0, testutil.CountFiles(t, f.env.UploadRoot), "izin dicek sebelum file ditulis")

	fields := f.fields()
	fields["profilInovasiId"] = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	res = f.create(t, f.env.Token(t, f.opdA), fields, allFiles())
	assert.Equal(t, 404, res.Status)

	res = f.create(t, f.env.Token(t, f.admin), f.fields(), allFiles())
	assert.Equal(t, 201, res.Status)
}

func TestGetIndikator(t *testing.T) {
	f := setup(t)
	ind := f.env.CreateIndikator(t, f.profil.ID)
	other := testutil.CreateProfil(t, f.env.DB, f.opdB.ID, "Inovasi B")
	f.env.CreateIndikator(t, other.ID)

	res := f.env.Do(t, testutil.JSONRequest(t, "GET", "/api/indikator-inovasi/"+ind.ID.String(), f.env.Token(t, f.opdB), nil))
	assert.Equal(t, 403, res.Status)

	res = f.env.Do(t, testutil.JSONRequest(t, "GET", "/api/indikator-inovasi/profil/"+f.profil.ID.String(), f.env.Token(t, f.opdA), nil))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, ind.ID.String(), res.DataMap()["id"])

	empty := testutil.CreateProfil(t, f.env.DB, f.opdA.ID, "Belum Lengkap")
	res = f.env.Do(t, testutil.JSONRequest(t, "GET", "/api/indikator-inovasi/profil/"+empty.ID.String(), f.env.Token(t, f.opdA), nil))
	assert.Equal(t, 404, res.Status)

	res = f.env.Do(t, testutil.JSONRequest(t, "GET", "/api/indikator-inovasi", f.env.Token(t, f.opdA), nil))
	require.Equal(t, 200, res.Status)
	assert.Len(t, res.DataMap()["items"], 1)

	res = f.env.Do(t, testutil.JSONRequest(t, "GET", "/api/indikator-inovasi?search=inovasi%20b", f.env.Token(t, f.admin), nil))
	require.Equal(t, 200, res.Status)
	items := res.DataMap()["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, other.ID.String(), items[0].(map[string]any)["profilInovasiId"])
}

func TestUpdateIndikatorReplacesFiles(t *testing.T) {
	f := setup(t)
	ind := f.env.CreateIndikator(t, f.profil.ID)
	path := "/api/indikator-inovasi/" + ind.ID.String()
	tok := f.env.Token(t, f.opdA)
	oldPath := ind.AlatKerja

	res := f.env.Do(t, testutil.MultipartRequest(t, "PATCH", path, tok, nil, nil))
	assert.Equal(t, 400, res.Status)

	other := testutil.CreateProfil(t, f.env.DB, f.opdA.ID, "Inovasi Lain")
	res = f.env.Do(t, testutil.MultipartRequest(t, "PATCH", path, tok, map[string]string{"profilInovasiId": other.ID.String()}, nil))
	assert.Equal(t, 400, res.Status)
	assert.True(t, res.HasFieldError("profilInovasiId"))

	res = f.env.Do(t, testutil.MultipartRequest(t, "PATCH", path, tok,
		map[string]string{"kualitasInovasiDaerah": "https://youtu.be/baru"},
		map[string]testutil.File{"alatKerja": {Name: "alat.pdf", Content: testutil.PDF()}},
	))
	require.Equal(t, 200, res.Status, res.Message)
	assert.Equal(t, "https://youtu.be/baru", res.DataMap()["kualitasInovasiDaerah"])
	newPath := res.DataMap()["alatKerja"].(string)
	assert.NotEqual(t, oldPath, newPath)

	assert.Equal(t, len(model.EvidenceFields), testutil.CountFiles(t, f.env.UploadRoot), "file lama diganti, bukan ditambah")

	var saved model.IndikatorInovasiModel
	require.NoError(t, f.env.DB.First(&saved, "id = ?", ind.ID).Error)
	assert.Equal(t, newPath, saved.AlatKerja)
	assert.Equal(t, ind.Replikasi, saved.Replikasi)
}

func TestUpdateIndikatorInvalidFileKeepsOld(t *testing.T) {
	f := setup(t)
	ind := f.env.CreateIndikator(t, f.profil.ID)

	res := f.env.Do(t, testutil.MultipartRequest(t, "PATCH", "/api/indikator-inovasi/"+ind.ID.String(), f.env.Token(t, f.opdA), nil,
		map[string]testutil.File{
			"alatKerja": {Name: "ok.pdf", Content: testutil.PDF()},
			"replikasi": {Name: "bad.txt", Content: []byte("teks biasa saja")},
		},
	))
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, len(model.EvidenceFields), testutil.CountFiles(t, f.env.UploadRoot))

	var saved model.IndikatorInovasiModel
	require.NoError(t, f.env.DB.First(&saved, "id = ?", ind.ID).Error)
	assert.Equal(t, ind.AlatKerja, saved.AlatKerja)
}

func TestDeleteIndikator(t *testing.T) {
	f := setup(t)
	ind := f.env.CreateIndikator(t, f.profil.ID)
	path := "/api/indikator-inovasi/" + ind.ID.String()

	res := f.env.Do(t, testutil.JSONRequest(t, "DELETE", path, f.env.Token(t, f.opdA), nil))
	assert.Equal(t, 403, res.Status)

	res = f.env.Do(t, testutil.JSONRequest(t, "DELETE", path, f.env.Token(t, f.admin), nil))
	require.Equal(t, 200, res.Status)
	assert.Equal(t, 0, testutil.CountFiles(t, f.env.UploadRoot))

	var n int64
	f.env.DB.Model(&profilModel.ProfilInovasiModel{}).Where("id = ?", f.profil.ID).Count(&n)
	assert.EqualValues(t, 1, n, "profil tetap ada")
}

func TestCreateIndikatorConcurrent(t *testing.T) {
	f := setup(t)
	tok := f.env.Token(t, f.opdA)

	const n = 6
	reqs := make([]*http.Request, n)
	for i := range reqs {
		reqs[i] = testutil.MultipartRequest(t, "POST", "/api/indikator-inovasi", tok, f.fields(), allFiles())
	}

	codes := make([]int, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := f.env.App.Test(reqs[i], -1)
			if err != nil {
				errs[i] = err
				return
			}
			res.Body.Close()
			codes[i] = res.StatusCode
		}(i)
	}
	wg.Wait()

	created, conflict := 0, 0
	for i, code := range codes {
		require.NoError(t, errs[i])
		switch code {
		case 201:
			created++
		case 409:
			conflict++
		}
	}
	assert.Equal(t, 1, created, "%v", codes)
	assert.Equal(t, n-1, conflict, "%v", codes)

	var rows int64
	require.NoError(t, f.env.DB.Model(&model.IndikatorInovasiModel{}).Where("profil_inovasi_id = ?", f.profil.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
	assert.Equal(t, len(model.EvidenceFields), testutil.CountFiles(t, f.env.UploadRoot))
}

// Baris lain menyusup di antara pre-check dan INSERT: unique index yang menolak.
func TestCreateIndikatorUniqueIndexConflict(t *testing.T) {
	f := setup(t)
	tok := f.env.Token(t, f.opdA)

	injected := false
	require.NoError(t, f.env.DB.Callback().Create().Before("gorm:begin_transaction").Register("test:sneak_indikator", func(db *gorm.DB) {
		row, ok := db.Statement.Dest.(*model.IndikatorInovasiModel)
		if injected || !ok {
			return
		}
		injected = true
		dup := *row
		dup.ID = uuid.New()
		if err := db.Session(&gorm.Session{NewDB: true, SkipHooks: true}).Create(&dup).Error; err != nil {
			_ = db.AddError(err)
		}
	}))

	res := f.create(t, tok, f.fields(), allFiles())
	require.True(t, injected)
	assert.Equal(t, 409, res.Status, res.Message)

	var rows int64
	require.NoError(t, f.env.DB.Model(&model.IndikatorInovasiModel{}).Where("profil_inovasi_id = ?", f.profil.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
	// file dari request yang kalah ikut dihapus; baris selipan merujuk path yang sama
	assert.Zero(t, testutil.CountFiles(t, f.env.UploadRoot))
}
