package domain

import "time"

// CompanyFields is the create shape of a Company (empresa): one of the
// outsourcing provider's own legal entities.
type CompanyFields struct {
	LegalName      string  `json:"razao_social"        bson:"razao_social"`
	TaxID          string  `json:"cnpj"                bson:"cnpj"`
	MunicipalTaxID *string `json:"inscricao_municipal" bson:"inscricao_municipal"`
	Street         string  `json:"logradouro"          bson:"logradouro"`
	PostalCode     string  `json:"cep"                 bson:"cep"`
	City           string  `json:"cidade"              bson:"cidade"`
	State          string  `json:"estado"              bson:"estado"`
}

type Company struct {
	ID            string `json:"id" bson:"id"`
	CompanyFields `bson:",inline"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func NewCompany(s Stamp, f CompanyFields) Company {
	return Company{ID: s.ID, CompanyFields: f, CreatedAt: s.CreatedAt}
}

// ClientFields is the create shape of a Client (cliente): a contracting
// customer and the terms of its service contract.
type ClientFields struct {
	LegalName          string  `json:"razao_social"        bson:"razao_social"`
	TaxID              string  `json:"cnpj"                bson:"cnpj"`
	Street             string  `json:"logradouro"          bson:"logradouro"`
	PostalCode         string  `json:"cep"                 bson:"cep"`
	City               string  `json:"cidade"              bson:"cidade"`
	State              string  `json:"estado"              bson:"estado"`
	BusinessArea       string  `json:"area_atuacao"        bson:"area_atuacao"`
	ContractValue      Money   `json:"valor_contrato"      bson:"valor_contrato"`
	ServiceDescription string  `json:"descricao_servicos"  bson:"descricao_servicos"`
	ResponsibleContact *string `json:"sindico_responsavel" bson:"sindico_responsavel"`
}

type Client struct {
	ID           string `json:"id" bson:"id"`
	ClientFields `bson:",inline"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func NewClient(s Stamp, f ClientFields) Client {
	return Client{ID: s.ID, ClientFields: f, CreatedAt: s.CreatedAt}
}

// RoleFields is the create shape of a job Role (função).
type RoleFields struct {
	Name           string `json:"nome"      bson:"nome"`
	Description    string `json:"descricao" bson:"descricao"`
	OccupationCode string `json:"cbo"       bson:"cbo"`
}

type Role struct {
	ID         string `json:"id" bson:"id"`
	RoleFields `bson:",inline"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

func NewRole(s Stamp, f RoleFields) Role {
	return Role{ID: s.ID, RoleFields: f, CreatedAt: s.CreatedAt}
}
