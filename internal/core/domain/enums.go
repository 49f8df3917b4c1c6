package domain

// Enumerated fields are closed sets of string tags. Each type lists its
// members in Values and rejects anything else in IsValid.

// MaritalStatus is an employee's estado_civil.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Solteiro"
	MaritalMarried  MaritalStatus = "Casado"
	MaritalDivorced MaritalStatus = "Divorciado"
	MaritalWidowed  MaritalStatus = "Viúvo"
)

func (MaritalStatus) Values() []string {
	return []string{
		string(MaritalSingle), string(MaritalMarried),
		string(MaritalDivorced), string(MaritalWidowed),
	}
}

func (s MaritalStatus) IsValid() bool {
	switch s {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

// EducationLevel is an employee's escolaridade.
type EducationLevel string

const (
	EducationElementaryIncomplete EducationLevel = "Fundamental Incompleto"
	EducationElementaryComplete   EducationLevel = "Fundamental Completo"
	EducationHighSchoolIncomplete EducationLevel = "Médio Incompleto"
	EducationHighSchoolComplete   EducationLevel = "Médio Completo"
	EducationCollegeIncomplete    EducationLevel = "Superior Incompleto"
	EducationCollegeComplete      EducationLevel = "Superior Completo"
)

func (EducationLevel) Values() []string {
	return []string{
		string(EducationElementaryIncomplete), string(EducationElementaryComplete),
		string(EducationHighSchoolIncomplete), string(EducationHighSchoolComplete),
		string(EducationCollegeIncomplete), string(EducationCollegeComplete),
	}
}

func (e EducationLevel) IsValid() bool {
	switch e {
	case EducationElementaryIncomplete, EducationElementaryComplete,
		EducationHighSchoolIncomplete, EducationHighSchoolComplete,
		EducationCollegeIncomplete, EducationCollegeComplete:
		return true
	}
	return false
}

// AbsenceType tags why an attendance entry was absent (tipo_falta).
type AbsenceType string

const (
	AbsenceJustified   AbsenceType = "Justificada"
	AbsenceUnjustified AbsenceType = "Não Justificada"
)

func (AbsenceType) Values() []string {
	return []string{string(AbsenceJustified), string(AbsenceUnjustified)}
}

func (a AbsenceType) IsValid() bool {
	return a == AbsenceJustified || a == AbsenceUnjustified
}

// LeaveType is the kind of a leave record (tipo).
type LeaveType string

const (
	LeaveMaternity LeaveType = "Maternidade"
	LeavePaternity LeaveType = "Paternidade"
	LeaveBereave   LeaveType = "Nojo"
	LeaveMarriage  LeaveType = "Casamento"
	LeaveMedical   LeaveType = "Médica"
)

func (LeaveType) Values() []string {
	return []string{
		string(LeaveMaternity), string(LeavePaternity), string(LeaveBereave),
		string(LeaveMarriage), string(LeaveMedical),
	}
}

func (l LeaveType) IsValid() bool {
	switch l {
	case LeaveMaternity, LeavePaternity, LeaveBereave, LeaveMarriage, LeaveMedical:
		return true
	}
	return false
}
