package service

import (
	"inovasi_backend/internals/constants"
	model "inovasi_backend/internals/features/inovasi/profil_inovasi/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	StageEmpty      = "EMPTY"
	StageProfilOnly = "PROFIL_ONLY"
	StageComplete   = "COMPLETE"
)

// InovasiStatus: status turunan, tidak disimpan.
type InovasiStatus struct {
	HasProfilInovasi    bool   `json:"hasProfilInovasi"`
	HasIndikatorInovasi bool   `json:"hasIndikatorInovasi"`
	Stage               string `json:"stage"`
	CanCreateIndikator  bool   `json:"canCreateIndikator"`
	NextAction          string `json:"nextAction"`
}

func DeriveStatus(profil *model.ProfilInovasiModel, indikatorPresent bool) InovasiStatus {
	switch {
	case profil != nil && indikatorPresent:
		return InovasiStatus{
			HasProfilInovasi:    true,
			HasIndikatorInovasi: true,
			Stage:               StageComplete,
			CanCreateIndikator:  false,
			NextAction:          "Inovasi sudah lengkap dengan profil dan indikator",
		}
	case profil != nil:
		return InovasiStatus{
			HasProfilInovasi:   true,
			Stage:              StageProfilOnly,
			CanCreateIndikator: true,
			NextAction:         "Lanjutkan dengan membuat Indikator Inovasi",
		}
	default:
		// tidak terjadi selama profil selalu ada saat di-query
		return InovasiStatus{
			Stage:      StageEmpty,
			NextAction: "Mulai dengan membuat Profil Inovasi terlebih dahulu",
		}
	}
}

// Decision: hasil CanUserCreateIndikator. Code = status HTTP saat ditolak.
type Decision struct {
	CanCreate bool
	Reason    string
	Code      int
}

func (d Decision) Err() error {
	if d.CanCreate {
		return nil
	}
	return fiber.NewError(d.Code, d.Reason)
}

func CanUserCreateIndikator(profil *model.ProfilInovasiModel, hasIndikator bool, userID uuid.UUID, role string) Decision {
	if profil == nil {
		return Decision{Reason: "Profil Inovasi tidak ditemukan", Code: fiber.StatusNotFound}
	}
	if role != constants.RoleAdmin && profil.UserID != userID {
		return Decision{Reason: "Anda tidak memiliki akses ke profil inovasi ini", Code: fiber.StatusForbidden}
	}
	if hasIndikator {
		return Decision{Reason: "Indikator Inovasi sudah ada untuk profil ini", Code: fiber.StatusConflict}
	}
	return Decision{CanCreate: true}
}
