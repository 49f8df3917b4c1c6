package handler

import "github.com/workforcepro/terceirizacao-api/internal/core/domain"

// --- Request → domain create shape ---
// Required fields are known to be non-nil once bindCreate has passed.

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toCompanyFields(r *createCompanyRequest) domain.CompanyFields {
	return domain.CompanyFields{
		LegalName:      deref(r.RazaoSocial),
		TaxID:          deref(r.CNPJ),
		MunicipalTaxID: r.InscricaoMunicipal,
		Street:         deref(r.Logradouro),
		PostalCode:     deref(r.CEP),
		City:           deref(r.Cidade),
		State:          deref(r.Estado),
	}
}

func toClientFields(r *createClientRequest) domain.ClientFields {
	return domain.ClientFields{
		LegalName:          deref(r.RazaoSocial),
		TaxID:              deref(r.CNPJ),
		Street:             deref(r.Logradouro),
		PostalCode:         deref(r.CEP),
		City:               deref(r.Cidade),
		State:              deref(r.Estado),
		BusinessArea:       deref(r.AreaAtuacao),
		ContractValue:      deref(r.ValorContrato),
		ServiceDescription: deref(r.DescricaoServicos),
		ResponsibleContact: r.SindicoResponsavel,
	}
}

func toRoleFields(r *createRoleRequest) domain.RoleFields {
	return domain.RoleFields{
		Name:           deref(r.Nome),
		Description:    deref(r.Descricao),
		OccupationCode: deref(r.CBO),
	}
}

func toEmployeeFields(r *createEmployeeRequest) domain.EmployeeFields {
	return domain.EmployeeFields{
		Name:                deref(r.Nome),
		Address:             deref(r.Endereco),
		Phone:               deref(r.Telefone),
		City:                deref(r.Cidade),
		State:               deref(r.Estado),
		PostalCode:          deref(r.CEP),
		RoleID:              deref(r.FuncaoID),
		Birthplace:          deref(r.LocalNascimento),
		FatherName:          deref(r.NomePai),
		MotherName:          deref(r.NomeMae),
		ESocialRegistration: deref(r.MatriculaESocial),
		OccupationCode:      deref(r.CBO),
		IDCard:              deref(r.RG),
		IDCardIssuedOn:      deref(r.DataEmissaoRG),
		IDCardIssuer:        deref(r.OrgaoEmissorRG),
		TaxpayerID:          deref(r.CPF),
		WorkCard:            deref(r.CTPS),
		WorkCardIssuedOn:    deref(r.DataEmissaoCTPS),
		WorkCardIssuer:      deref(r.OrgaoEmissorCTPS),
		VoterID:             deref(r.TituloEleitor),
		VoterZone:           deref(r.ZonaEleitoral),
		VoterSection:        deref(r.SecaoEleitoral),
		Education:           deref(r.Escolaridade),
		MaritalStatus:       deref(r.EstadoCivil),
		Nationality:         deref(r.Nacionalidade),
		WorkSchedule:        deref(r.HorarioTrabalho),
		PISNumber:           deref(r.NumeroPIS),
		Salary:              deref(r.Salario),
		CompanyID:           deref(r.EmpresaID),
		AdmissionDate:       deref(r.DataAdmissao),
		HasDependents:       deref(r.TemDependentes),
		DependentCount:      deref(r.QuantidadeDependentes),
		ClientID:            deref(r.ClienteID),
		Post:                deref(r.PostoAlocacao),
	}
}

func toAttendanceFields(r *createAttendanceRequest) domain.AttendanceFields {
	return domain.AttendanceFields{
		EmployeeID:  deref(r.FuncionarioID),
		Date:        deref(r.Data),
		Present:     deref(r.Presente),
		AbsenceType: r.TipoFalta,
		Notes:       r.Observacoes,
	}
}

func toCertificateFields(r *createCertificateRequest) domain.CertificateFields {
	return domain.CertificateFields{
		EmployeeID:     deref(r.FuncionarioID),
		IssuedOn:       deref(r.DataEmissao),
		DiagnosisCode:  deref(r.CID),
		DaysOff:        deref(r.DiasAfastamento),
		ExpectedReturn: deref(r.DataRetornoPrevista),
		Notes:          r.Observacoes,
	}
}

func toLeaveFields(r *createLeaveRequest) domain.LeaveFields {
	return domain.LeaveFields{
		EmployeeID: deref(r.FuncionarioID),
		Type:       deref(r.Tipo),
		StartDate:  deref(r.DataInicio),
		EndDate:    deref(r.DataFim),
		Reason:     deref(r.Motivo),
		Notes:      r.Observacoes,
	}
}
