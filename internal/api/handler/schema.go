package handler

import "github.com/workforcepro/terceirizacao-api/internal/core/domain"

// Request bodies. Every field is a pointer so that an absent key can be told
// apart from a zero value; required fields carry validate:"required".

type createCompanyRequest struct {
	RazaoSocial        *string `json:"razao_social"        validate:"required"`
	CNPJ               *string `json:"cnpj"                validate:"required"`
	InscricaoMunicipal *string `json:"inscricao_municipal"`
	Logradouro         *string `json:"logradouro"          validate:"required"`
	CEP                *string `json:"cep"                 validate:"required"`
	Cidade             *string `json:"cidade"              validate:"required"`
	Estado             *string `json:"estado"              validate:"required"`
}

type createClientRequest struct {
	RazaoSocial        *string       `json:"razao_social"        validate:"required"`
	CNPJ               *string       `json:"cnpj"                validate:"required"`
	Logradouro         *string       `json:"logradouro"          validate:"required"`
	CEP                *string       `json:"cep"                 validate:"required"`
	Cidade             *string       `json:"cidade"              validate:"required"`
	Estado             *string       `json:"estado"              validate:"required"`
	AreaAtuacao        *string       `json:"area_atuacao"        validate:"required"`
	ValorContrato      *domain.Money `json:"valor_contrato"      validate:"required" swaggertype:"number" example:"15000.50"`
	DescricaoServicos  *string       `json:"descricao_servicos"  validate:"required"`
	SindicoResponsavel *string       `json:"sindico_responsavel"`
}

type createRoleRequest struct {
	Nome      *string `json:"nome"      validate:"required"`
	Descricao *string `json:"descricao" validate:"required"`
	CBO       *string `json:"cbo"       validate:"required"`
}

type createEmployeeRequest struct {
	Nome                  *string                `json:"nome"                   validate:"required"`
	Endereco              *string                `json:"endereco"               validate:"required"`
	Telefone              *string                `json:"telefone"               validate:"required"`
	Cidade                *string                `json:"cidade"                 validate:"required"`
	Estado                *string                `json:"estado"                 validate:"required"`
	CEP                   *string                `json:"cep"                    validate:"required"`
	FuncaoID              *string                `json:"funcao_id"              validate:"required"`
	LocalNascimento       *string                `json:"local_nascimento"       validate:"required"`
	NomePai               *string                `json:"nome_pai"               validate:"required"`
	NomeMae               *string                `json:"nome_mae"               validate:"required"`
	MatriculaESocial      *string                `json:"matricula_esocial"      validate:"required"`
	CBO                   *string                `json:"cbo"                    validate:"required"`
	RG                    *string                `json:"rg"                     validate:"required"`
	DataEmissaoRG         *domain.Date           `json:"data_emissao_rg"        validate:"required" swaggertype:"string" format:"date" example:"2010-05-20"`
	OrgaoEmissorRG        *string                `json:"orgao_emissor_rg"       validate:"required"`
	CPF                   *string                `json:"cpf"                    validate:"required"`
	CTPS                  *string                `json:"ctps"                   validate:"required"`
	DataEmissaoCTPS       *domain.Date           `json:"data_emissao_ctps"      validate:"required" swaggertype:"string" format:"date" example:"2012-03-01"`
	OrgaoEmissorCTPS      *string                `json:"orgao_emissor_ctps"     validate:"required"`
	TituloEleitor         *string                `json:"titulo_eleitor"         validate:"required"`
	ZonaEleitoral         *string                `json:"zona_eleitoral"         validate:"required"`
	SecaoEleitoral        *string                `json:"secao_eleitoral"        validate:"required"`
	Escolaridade          *domain.EducationLevel `json:"escolaridade"           validate:"required,enum" swaggertype:"string" enums:"Fundamental Incompleto,Fundamental Completo,Médio Incompleto,Médio Completo,Superior Incompleto,Superior Completo"`
	EstadoCivil           *domain.MaritalStatus  `json:"estado_civil"           validate:"required,enum" swaggertype:"string" enums:"Solteiro,Casado,Divorciado,Viúvo"`
	Nacionalidade         *string                `json:"nacionalidade"          validate:"required"`
	HorarioTrabalho       *string                `json:"horario_trabalho"       validate:"required"`
	NumeroPIS             *string                `json:"numero_pis"             validate:"required"`
	Salario               *domain.Money          `json:"salario"                validate:"required" swaggertype:"number" example:"2150.75"`
	EmpresaID             *string                `json:"empresa_id"             validate:"required"`
	DataAdmissao          *domain.Date           `json:"data_admissao"          validate:"required" swaggertype:"string" format:"date" example:"2024-01-15"`
	TemDependentes        *bool                  `json:"tem_dependentes"        validate:"required"`
	QuantidadeDependentes *int                   `json:"quantidade_dependentes"`
	ClienteID             *string                `json:"cliente_id"             validate:"required"`
	PostoAlocacao         *string                `json:"posto_alocacao"         validate:"required"`
}

type createAttendanceRequest struct {
	FuncionarioID *string             `json:"funcionario_id" validate:"required"`
	Data          *domain.Date        `json:"data"           validate:"required" swaggertype:"string" format:"date" example:"2026-10-19"`
	Presente      *bool               `json:"presente"       validate:"required"`
	TipoFalta     *domain.AbsenceType `json:"tipo_falta"     validate:"omitempty,enum" swaggertype:"string" enums:"Justificada,Não Justificada"`
	Observacoes   *string             `json:"observacoes"`
}

type createCertificateRequest struct {
	FuncionarioID       *string      `json:"funcionario_id"        validate:"required"`
	DataEmissao         *domain.Date `json:"data_emissao"          validate:"required" swaggertype:"string" format:"date" example:"2026-10-15"`
	CID                 *string      `json:"cid"                   validate:"required"`
	DiasAfastamento     *int         `json:"dias_afastamento"      validate:"required"`
	DataRetornoPrevista *domain.Date `json:"data_retorno_prevista" validate:"required" swaggertype:"string" format:"date" example:"2026-10-22"`
	Observacoes         *string      `json:"observacoes"`
}

type createLeaveRequest struct {
	FuncionarioID *string           `json:"funcionario_id" validate:"required"`
	Tipo          *domain.LeaveType `json:"tipo"           validate:"required,enum" swaggertype:"string" enums:"Maternidade,Paternidade,Nojo,Casamento,Médica"`
	DataInicio    *domain.Date      `json:"data_inicio"    validate:"required" swaggertype:"string" format:"date" example:"2026-11-01"`
	DataFim       *domain.Date      `json:"data_fim"       validate:"required" swaggertype:"string" format:"date" example:"2026-11-05"`
	Motivo        *string           `json:"motivo"         validate:"required"`
	Observacoes   *string           `json:"observacoes"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse is returned with 422 and lists every rejected field.
type ValidationResponse struct {
	Error  string              `json:"error"`
	Detail []domain.FieldIssue `json:"detail"`
}
