package dto

import (
	"mime/multipart"
	"strings"

	"inovasi_backend/internals/features/inovasi/indikator_inovasi/model"
	profilDTO "inovasi_backend/internals/features/inovasi/profil_inovasi/dto"
	profilModel "inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	helper "inovasi_backend/internals/helpers"

	"github.com/google/uuid"
)

// Form adalah isi multipart request indikator yang sudah dipilah.
type Form struct {
	ProfilInovasiID       string
	KualitasInovasiDaerah *string
	Files                 map[string]*multipart.FileHeader
}

// ParseForm memilah multipart. Lebih dari satu file per field → error.
func ParseForm(mf *multipart.Form) (*Form, error) {
	f := &Form{Files: map[string]*multipart.FileHeader{}}
	if mf == nil {
		return f, nil
	}
	if v := mf.Value["profilInovasiId"]; len(v) > 0 {
		f.ProfilInovasiID = strings.TrimSpace(v[0])
	}
	if v := mf.Value["kualitasInovasiDaerah"]; len(v) > 0 {
		s := strings.TrimSpace(v[0])
		f.KualitasInovasiDaerah = &s
	}

	ve := &helper.ValidationError{Message: "Validasi gagal"}
	known := map[string]bool{}
	for _, ef := range model.EvidenceFields {
		known[ef.Name] = true
		files := mf.File[ef.Name]
		switch {
		case len(files) == 1:
			f.Files[ef.Name] = files[0]
		case len(files) > 1:
			ve.Add(ef.Name, "Hanya boleh 1 file untuk "+ef.Name)
		}
	}
	for name := range mf.File {
		if !known[name] {
			ve.Add(name, "Field file tidak dikenal: "+name)
		}
	}
	return f, ve.ErrOrNil()
}

// ValidateCreate: profilInovasiId, URL YouTube, dan ke-19 file wajib ada.
func (f *Form) ValidateCreate() (uuid.UUID, error) {
	ve := &helper.ValidationError{Message: "Validasi gagal"}

	id, err := uuid.Parse(f.ProfilInovasiID)
	if err != nil {
		ve.Add("profilInovasiId", "profilInovasiId harus berupa UUID yang valid")
	}
	f.validateURL(ve, true)

	for _, ef := range model.EvidenceFields {
		if f.Files[ef.Name] == nil {
			ve.Add(ef.Name, ef.Name+" wajib diunggah")
		}
	}
	return id, ve.ErrOrNil()
}

// ValidateUpdate: minimal satu file atau URL; profilInovasiId tidak boleh diganti.
func (f *Form) ValidateUpdate(current uuid.UUID) error {
	ve := &helper.ValidationError{Message: "Validasi gagal"}
	if f.ProfilInovasiID != "" && f.ProfilInovasiID != current.String() {
		ve.Add("profilInovasiId", "profilInovasiId tidak dapat diubah")
	}
	f.validateURL(ve, false)
	if len(f.Files) == 0 && f.KualitasInovasiDaerah == nil && !ve.HasErrors() {
		ve.Add("files", "Tidak ada data yang diubah")
	}
	return ve.ErrOrNil()
}

func (f *Form) validateURL(ve *helper.ValidationError, required bool) {
	switch {
	case f.KualitasInovasiDaerah == nil || *f.KualitasInovasiDaerah == "":
		if required || f.KualitasInovasiDaerah != nil {
			ve.Add("kualitasInovasiDaerah", "kualitasInovasiDaerah wajib diisi")
		}
	case !helper.IsYouTubeURL(*f.KualitasInovasiDaerah):
		ve.Add("kualitasInovasiDaerah", "kualitasInovasiDaerah harus berupa URL YouTube yang valid (https://youtube.com/... atau https://youtu.be/...)")
	}
}

/* =========================
   RESPONSE
   ========================= */

type IndikatorInovasiResponse struct {
	model.IndikatorInovasiModel
	ProfilInovasi *profilDTO.ProfilSummary `json:"profilInovasi,omitempty"`
}

func FromModel(m *model.IndikatorInovasiModel, profil *profilModel.ProfilInovasiModel) IndikatorInovasiResponse {
	return IndikatorInovasiResponse{
		IndikatorInovasiModel: *m,
		ProfilInovasi:         profilDTO.SummaryFromModel(profil),
	}
}

func FromModelList(list []model.IndikatorInovasiModel, profils map[uuid.UUID]*profilModel.ProfilInovasiModel) []IndikatorInovasiResponse {
	out := make([]IndikatorInovasiResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i], profils[list[i].ProfilInovasiID]))
	}
	return out
}
