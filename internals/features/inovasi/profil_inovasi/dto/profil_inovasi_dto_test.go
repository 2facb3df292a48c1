package dto

import (
	"errors"
	"strings"
	"testing"
	"time"

	"inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	helper "inovasi_backend/internals/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func validCreate() CreateProfilInovasiRequest {
	return CreateProfilInovasiRequest{
		NamaInovasi:      "Sistem Informasi Pelayanan Terpadu",
		Inovator:         "Diskominfo",
		JenisInovasi:     "digital",
		BentukInovasi:    "Aplikasi Web",
		TanggalUjiCoba:   "2024-01-15",
		TanggalPenerapan: "2024-03-01T00:00:00.000Z",
		RancangBangun:    strings.Repeat("a", 300),
		TujuanInovasi:    "Mempercepat layanan",
		ManfaatInovasi:   "Layanan lebih cepat",
		HasilInovasi:     "Waktu tunggu turun",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve), "%v", err)
	out := map[string]string{}
	for _, f := range ve.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-01-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("2024-03-01T17:30:00+07:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("15/01/2024")
	assert.False(t, ok)
}

func TestCreateValidate(t *testing.T) {
	r := validCreate()
	r.Normalize()
	uji, terap, err := r.Validate()
	require.NoError(t, err)
	assert.Equal(t, "DIGITAL", r.JenisInovasi)
	assert.True(t, uji.Before(terap))

	r = validCreate()
	r.RancangBangun = strings.Repeat("a", 299)
	_, _, err = r.Validate()
	assert.Contains(t, fieldsOf(t, err), "rancangBangun")

	r = validCreate()
	r.RancangBangun = "  " + strings.Repeat("a", 299) + "  "
	r.Normalize()
	_, _, err = r.Validate()
	assert.Contains(t, fieldsOf(t, err), "rancangBangun", "spasi di tepi tidak dihitung")

	r = validCreate()
	r.TanggalUjiCoba = "2024-03-02"
	r.TanggalPenerapan = "2024-03-01"
	_, _, err = r.Validate()
	assert.Equal(t, msgDateOrder, fieldsOf(t, err)["tanggalPenerapan"])

	r = validCreate()
	r.TanggalUjiCoba = "2024-03-01"
	r.TanggalPenerapan = "2024-03-01"
	_, _, err = r.Validate()
	assert.NoError(t, err, "tanggal sama diperbolehkan")

	r = validCreate()
	r.TanggalUjiCoba = "kemarin"
	_, _, err = r.Validate()
	assert.Contains(t, fieldsOf(t, err), "tanggalUjiCoba")
}

func TestUpdateApplyToModelChecksMergedDates(t *testing.T) {
	m := &model.ProfilInovasiModel{
		NamaInovasi:      "Lama",
		TanggalUjiCoba:   datatypes.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		TanggalPenerapan: datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	late := "2024-04-01"
	r := UpdateProfilInovasiRequest{TanggalUjiCoba: &late}
	assert.Equal(t, msgDateOrder, fieldsOf(t, r.ApplyToModel(m))["tanggalPenerapan"])
	assert.Equal(t, "Lama", m.NamaInovasi, "model tidak berubah saat gagal")

	nama := "  Nama Baru  "
	r = UpdateProfilInovasiRequest{NamaInovasi: &nama, TanggalUjiCoba: &late, TanggalPenerapan: &late}
	r.Normalize()
	require.NoError(t, r.ApplyToModel(m))
	assert.Equal(t, "Nama Baru", m.NamaInovasi)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), time.Time(m.TanggalPenerapan))

	short := strings.Repeat("x", 10)
	r = UpdateProfilInovasiRequest{RancangBangun: &short}
	assert.Contains(t, fieldsOf(t, r.ApplyToModel(m)), "rancangBangun")

	assert.True(t, (&UpdateProfilInovasiRequest{}).IsEmpty())
}
