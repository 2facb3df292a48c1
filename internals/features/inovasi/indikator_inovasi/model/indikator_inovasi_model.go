package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IndikatorInovasiModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfilInovasiID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_indikator_profil" json:"profilInovasiId"`

	RegulasiInovasiDaerah           string `gorm:"column:regulasi_inovasi_daerah;not null" json:"regulasiInovasiDaerah"`
	KetersediaanSDM                 string `gorm:"column:ketersediaan_sdm;not null" json:"ketersediaanSDM"`
	DukunganAnggaran                string `gorm:"column:dukungan_anggaran;not null" json:"dukunganAnggaran"`
	AlatKerja                       string `gorm:"column:alat_kerja;not null" json:"alatKerja"`
	BimtekInovasi                   string `gorm:"column:bimtek_inovasi;not null" json:"bimtekInovasi"`
	IntegrasiProgramRKPD            string `gorm:"column:integrasi_program_rkpd;not null" json:"integrasiProgramRKPD"`
	KeterlibatanAktorInovasi        string `gorm:"column:keterlibatan_aktor_inovasi;not null" json:"keterlibatanAktorInovasi"`
	PelaksanaInovasiDaerah          string `gorm:"column:pelaksana_inovasi_daerah;not null" json:"pelaksanaInovasiDaerah"`
	JejaringInovasi                 string `gorm:"column:jejaring_inovasi;not null" json:"jejaringInovasi"`
	SosialisasiInovasiDaerah        string `gorm:"column:sosialisasi_inovasi_daerah;not null" json:"sosialisasiInovasiDaerah"`
	PedomanTeknis                   string `gorm:"column:pedoman_teknis;not null" json:"pedomanTeknis"`
	KemudahanInformasiLayanan       string `gorm:"column:kemudahan_informasi_layanan;not null" json:"kemudahanInformasiLayanan"`
	KemudahanProsesInovasi          string `gorm:"column:kemudahan_proses_inovasi;not null" json:"kemudahanProsesInovasi"`
	PenyelesaianLayananPengaduan    string `gorm:"column:penyelesaian_layanan_pengaduan;not null" json:"penyelesaianLayananPengaduan"`
	LayananTerintegrasi             string `gorm:"column:layanan_terintegrasi;not null" json:"layananTerintegrasi"`
	Replikasi                       string `gorm:"column:replikasi;not null" json:"replikasi"`
	KecepatanPenciptaanInovasi      string `gorm:"column:kecepatan_penciptaan_inovasi;not null" json:"kecepatanPenciptaanInovasi"`
	KemanfaatanInovasi              string `gorm:"column:kemanfaatan_inovasi;not null" json:"kemanfaatanInovasi"`
	MonitoringEvaluasiInovasiDaerah string `gorm:"column:monitoring_evaluasi_inovasi_daerah;not null" json:"monitoringEvaluasiInovasiDaerah"`

	KualitasInovasiDaerah string `gorm:"column:kualitas_inovasi_daerah;not null" json:"kualitasInovasiDaerah"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (IndikatorInovasiModel) TableName() string {
	return "indikator_inovasi"
}

func (m *IndikatorInovasiModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// EvidenceField: satu field bukti (nama multipart = nama JSON).
type EvidenceField struct {
	Name   string
	Column string
	ptr    func(*IndikatorInovasiModel) *string
}

// Ptr mengembalikan pointer ke kolom path file di model.
func (f EvidenceField) Ptr(m *IndikatorInovasiModel) *string { return f.ptr(m) }

// EvidenceFields: 19 field file, urutan tetap.
var EvidenceFields = []EvidenceField{
	{"regulasiInovasiDaerah", "regulasi_inovasi_daerah", func(m *IndikatorInovasiModel) *string { return &m.RegulasiInovasiDaerah }},
	{"ketersediaanSDM", "ketersediaan_sdm", func(m *IndikatorInovasiModel) *string { return &m.KetersediaanSDM }},
	{"dukunganAnggaran", "dukungan_anggaran", func(m *IndikatorInovasiModel) *string { return &m.DukunganAnggaran }},
	{"alatKerja", "alat_kerja", func(m *IndikatorInovasiModel) *string { return &m.AlatKerja }},
	{"bimtekInovasi", "bimtek_inovasi", func(m *IndikatorInovasiModel) *string { return &m.BimtekInovasi }},
	{"integrasiProgramRKPD", "integrasi_program_rkpd", func(m *IndikatorInovasiModel) *string { return &m.IntegrasiProgramRKPD }},
	{"keterlibatanAktorInovasi", "keterlibatan_aktor_inovasi", func(m *IndikatorInovasiModel) *string { return &m.KeterlibatanAktorInovasi }},
	{"pelaksanaInovasiDaerah", "pelaksana_inovasi_daerah", func(m *IndikatorInovasiModel) *string { return &m.PelaksanaInovasiDaerah }},
	{"jejaringInovasi", "jejaring_inovasi", func(m *IndikatorInovasiModel) *string { return &m.JejaringInovasi }},
	{"sosialisasiInovasiDaerah", "sosialisasi_inovasi_daerah", func(m *IndikatorInovasiModel) *string { return &m.SosialisasiInovasiDaerah }},
	{"pedomanTeknis", "pedoman_teknis", func(m *IndikatorInovasiModel) *string { return &m.PedomanTeknis }},
	{"kemudahanInformasiLayanan", "kemudahan_informasi_layanan", func(m *IndikatorInovasiModel) *string { return &m.KemudahanInformasiLayanan }},
	{"kemudahanProsesInovasi", "kemudahan_proses_inovasi", func(m *IndikatorInovasiModel) *string { return &m.KemudahanProsesInovasi }},
	{"penyelesaianLayananPengaduan", "penyelesaian_layanan_pengaduan", func(m *IndikatorInovasiModel) *string { return &m.PenyelesaianLayananPengaduan }},
	{"layananTerintegrasi", "layanan_terintegrasi", func(m *IndikatorInovasiModel) *string { return &m.LayananTerintegrasi }},
	{"replikasi", "replikasi", func(m *IndikatorInovasiModel) *string { return &m.Replikasi }},
	{"kecepatanPenciptaanInovasi", "kecepatan_penciptaan_inovasi", func(m *IndikatorInovasiModel) *string { return &m.KecepatanPenciptaanInovasi }},
	{"kemanfaatanInovasi", "kemanfaatan_inovasi", func(m *IndikatorInovasiModel) *string { return &m.KemanfaatanInovasi }},
	{"monitoringEvaluasiInovasiDaerah", "monitoring_evaluasi_inovasi_daerah", func(m *IndikatorInovasiModel) *string { return &m.MonitoringEvaluasiInovasiDaerah }},
}

// FilePaths: semua path file yang terisi.
func (m *IndikatorInovasiModel) FilePaths() []string {
	out := make([]string, 0, len(EvidenceFields))
	for _, f := range EvidenceFields {
		if p := *f.Ptr(m); p != "" {
			out = append(out, p)
		}
	}
	return out
}
