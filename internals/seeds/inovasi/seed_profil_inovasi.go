package inovasi

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"inovasi_backend/internals/constants"
	"inovasi_backend/internals/features/inovasi/profil_inovasi/dto"
	"inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	userModel "inovasi_backend/internals/features/users/user/model"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:embed data_profil_inovasi.json
var DataProfilInovasi []byte

type ProfilSeed struct {
	Owner            string `json:"owner"`
	NamaInovasi      string `json:"namaInovasi"`
	Inovator         string `json:"inovator"`
	JenisInovasi     string `json:"jenisInovasi"`
	BentukInovasi    string `json:"bentukInovasi"`
	TanggalUjiCoba   string `json:"tanggalUjiCoba"`
	TanggalPenerapan string `json:"tanggalPenerapan"`
	RancangBangun    string `json:"rancangBangun"`
	TujuanInovasi    string `json:"tujuanInovasi"`
	ManfaatInovasi   string `json:"manfaatInovasi"`
	HasilInovasi     string `json:"hasilInovasi"`
}

// SeedProfilInovasiFromJSON: pemilik harus user OPD aktif, nama yang sudah ada dilewati.
func SeedProfilInovasiFromJSON(db *gorm.DB, data []byte) (int, error) {
	var inputs []ProfilSeed
	if err := sonic.Unmarshal(data, &inputs); err != nil {
		return 0, fmt.Errorf("decode seed profil inovasi: %w", err)
	}

	owners := map[string]*userModel.UserModel{}
	inserted := 0
	for _, in := range inputs {
		owner, ok := owners[in.Owner]
		if !ok {
			var u userModel.UserModel
			err := db.Where("username = ? AND role = ? AND status = ?", in.Owner, constants.RoleOPD, constants.StatusAktif).First(&u).Error
			switch {
			case err == nil:
				owner = &u
			case errors.Is(err, gorm.ErrRecordNotFound):
				log.Printf("[WARN] Pemilik %s bukan OPD aktif, profil %q dilewati", in.Owner, in.NamaInovasi)
			default:
				return inserted, err
			}
			owners[in.Owner] = owner
		}
		if owner == nil {
			continue
		}

		var count int64
		if err := db.Model(&model.ProfilInovasiModel{}).Where("nama_inovasi = ?", in.NamaInovasi).Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			log.Printf("ℹ️ Profil %q sudah ada, dilewati.", in.NamaInovasi)
			continue
		}

		uji, ok1 := dto.ParseDate(in.TanggalUjiCoba)
		terap, ok2 := dto.ParseDate(in.TanggalPenerapan)
		if !ok1 || !ok2 || uji.After(terap) {
			log.Printf("[WARN] Tanggal profil %q tidak valid, dilewati", in.NamaInovasi)
			continue
		}

		row := model.ProfilInovasiModel{
			NamaInovasi:      in.NamaInovasi,
			Inovator:         in.Inovator,
			JenisInovasi:     in.JenisInovasi,
			BentukInovasi:    in.BentukInovasi,
			TanggalUjiCoba:   datatypes.Date(uji),
			TanggalPenerapan: datatypes.Date(terap),
			RancangBangun:    in.RancangBangun,
			TujuanInovasi:    in.TujuanInovasi,
			ManfaatInovasi:   in.ManfaatInovasi,
			HasilInovasi:     in.HasilInovasi,
			UserID:           owner.ID,
		}
		if err := db.Create(&row).Error; err != nil {
			return inserted, fmt.Errorf("insert profil %q: %w", in.NamaInovasi, err)
		}
		inserted++
	}
	log.Printf("✅ Berhasil insert %d profil inovasi", inserted)
	return inserted, nil
}
