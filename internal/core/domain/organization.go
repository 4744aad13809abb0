package domain

// Organization is the tenant boundary. Every other entity is scoped by OrganizationID.
type Organization struct {
	OrganizationID       string `json:"organizationID"`
	Name                 string `json:"name"`
	BaseCurrency         string `json:"baseCurrency"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth"`
	AuditFields
}
