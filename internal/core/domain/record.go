package domain

import "time"

// Collection names the logical store holding one entity kind.
type Collection string

const (
	CollectionCompanies    Collection = "empresas"
	CollectionClients      Collection = "clientes"
	CollectionRoles        Collection = "funcoes"
	CollectionEmployees    Collection = "funcionarios"
	CollectionAttendance   Collection = "registros_presenca"
	CollectionCertificates Collection = "atestados"
	CollectionLeaves       Collection = "licencas"
)

// Collections returns every collection the system writes to.
func Collections() []Collection {
	return []Collection{
		CollectionCompanies, CollectionClients, CollectionRoles, CollectionEmployees,
		CollectionAttendance, CollectionCertificates, CollectionLeaves,
	}
}

// Stamp is the server-assigned part of a stored record.
type Stamp struct {
	ID        string
	CreatedAt time.Time
}
