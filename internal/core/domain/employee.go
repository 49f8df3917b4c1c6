package domain

import "time"

// EmployeeFields is the create shape of an Employee (funcionário).
// RoleID, CompanyID and ClientID are opaque references; nothing checks
// that they name existing records.
type EmployeeFields struct {
	Name                string         `json:"nome"                   bson:"nome"`
	Address             string         `json:"endereco"               bson:"endereco"`
	Phone               string         `json:"telefone"               bson:"telefone"`
	City                string         `json:"cidade"                 bson:"cidade"`
	State               string         `json:"estado"                 bson:"estado"`
	PostalCode          string         `json:"cep"                    bson:"cep"`
	RoleID              string         `json:"funcao_id"              bson:"funcao_id"`
	Birthplace          string         `json:"local_nascimento"       bson:"local_nascimento"`
	FatherName          string         `json:"nome_pai"               bson:"nome_pai"`
	MotherName          string         `json:"nome_mae"               bson:"nome_mae"`
	ESocialRegistration string         `json:"matricula_esocial"      bson:"matricula_esocial"`
	OccupationCode      string         `json:"cbo"                    bson:"cbo"`
	IDCard              string         `json:"rg"                     bson:"rg"`
	IDCardIssuedOn      Date           `json:"data_emissao_rg"        bson:"data_emissao_rg"`
	IDCardIssuer        string         `json:"orgao_emissor_rg"       bson:"orgao_emissor_rg"`
	TaxpayerID          string         `json:"cpf"                    bson:"cpf"`
	WorkCard            string         `json:"ctps"                   bson:"ctps"`
	WorkCardIssuedOn    Date           `json:"data_emissao_ctps"      bson:"data_emissao_ctps"`
	WorkCardIssuer      string         `json:"orgao_emissor_ctps"     bson:"orgao_emissor_ctps"`
	VoterID             string         `json:"titulo_eleitor"         bson:"titulo_eleitor"`
	VoterZone           string         `json:"zona_eleitoral"         bson:"zona_eleitoral"`
	VoterSection        string         `json:"secao_eleitoral"        bson:"secao_eleitoral"`
	Education           EducationLevel `json:"escolaridade"           bson:"escolaridade"`
	MaritalStatus       MaritalStatus  `json:"estado_civil"           bson:"estado_civil"`
	Nationality         string         `json:"nacionalidade"          bson:"nacionalidade"`
	WorkSchedule        string         `json:"horario_trabalho"       bson:"horario_trabalho"`
	PISNumber           string         `json:"numero_pis"             bson:"numero_pis"`
	Salary              Money          `json:"salario"                bson:"salario"`
	CompanyID           string         `json:"empresa_id"             bson:"empresa_id"`
	AdmissionDate       Date           `json:"data_admissao"          bson:"data_admissao"`
	HasDependents       bool           `json:"tem_dependentes"        bson:"tem_dependentes"`
	DependentCount      int            `json:"quantidade_dependentes" bson:"quantidade_dependentes"`
	ClientID            string         `json:"cliente_id"             bson:"cliente_id"`
	Post                string         `json:"posto_alocacao"         bson:"posto_alocacao"`
}

type Employee struct {
	ID             string `json:"id" bson:"id"`
	EmployeeFields `bson:",inline"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

func NewEmployee(s Stamp, f EmployeeFields) Employee {
	return Employee{ID: s.ID, EmployeeFields: f, CreatedAt: s.CreatedAt}
}
