package domain

import "time"

// AttendanceFields is the create shape of an attendance entry: whether an
// employee showed up on a given day.
type AttendanceFields struct {
	EmployeeID  string       `json:"funcionario_id" bson:"funcionario_id"`
	Date        Date         `json:"data"           bson:"data"`
	Present     bool         `json:"presente"       bson:"presente"`
	AbsenceType *AbsenceType `json:"tipo_falta"     bson:"tipo_falta"`
	Notes       *string      `json:"observacoes"    bson:"observacoes"`
}

type AttendanceEntry struct {
	ID               string `json:"id" bson:"id"`
	AttendanceFields `bson:",inline"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

func NewAttendanceEntry(s Stamp, f AttendanceFields) AttendanceEntry {
	return AttendanceEntry{ID: s.ID, AttendanceFields: f, CreatedAt: s.CreatedAt}
}

// CertificateFields is the create shape of a medical certificate (atestado).
type CertificateFields struct {
	EmployeeID     string  `json:"funcionario_id"        bson:"funcionario_id"`
	IssuedOn       Date    `json:"data_emissao"          bson:"data_emissao"`
	DiagnosisCode  string  `json:"cid"                   bson:"cid"`
	DaysOff        int     `json:"dias_afastamento"      bson:"dias_afastamento"`
	ExpectedReturn Date    `json:"data_retorno_prevista" bson:"data_retorno_prevista"`
	Notes          *string `json:"observacoes"           bson:"observacoes"`
}

type MedicalCertificate struct {
	ID                string `json:"id" bson:"id"`
	CertificateFields `bson:",inline"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

func NewMedicalCertificate(s Stamp, f CertificateFields) MedicalCertificate {
	return MedicalCertificate{ID: s.ID, CertificateFields: f, CreatedAt: s.CreatedAt}
}

// LeaveFields is the create shape of a leave record (licença).
type LeaveFields struct {
	EmployeeID string    `json:"funcionario_id" bson:"funcionario_id"`
	Type       LeaveType `json:"tipo"           bson:"tipo"`
	StartDate  Date      `json:"data_inicio"    bson:"data_inicio"`
	EndDate    Date      `json:"data_fim"       bson:"data_fim"`
	Reason     string    `json:"motivo"         bson:"motivo"`
	Notes      *string   `json:"observacoes"    bson:"observacoes"`
}

type Leave struct {
	ID          string `json:"id" bson:"id"`
	LeaveFields `bson:",inline"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

func NewLeave(s Stamp, f LeaveFields) Leave {
	return Leave{ID: s.ID, LeaveFields: f, CreatedAt: s.CreatedAt}
}
