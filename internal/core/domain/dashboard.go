package domain

// DashboardStats is a point-in-time set of counts. The six values come from
// independent queries and are not a consistent snapshot.
type DashboardStats struct {
	TotalEmployees     int64 `json:"total_funcionarios"`
	TotalClients       int64 `json:"total_clientes"`
	TotalCompanies     int64 `json:"total_empresas"`
	PresentToday       int64 `json:"funcionarios_presentes_hoje"`
	AbsentToday        int64 `json:"funcionarios_ausentes_hoje"`
	ActiveCertificates int64 `json:"atestados_ativos"`
}
