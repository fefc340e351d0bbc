package entities

import "time"

// Signature is the (approvedAt, signedBy) pair kept for each optional approver.
//
// Inherited is true when the step was skipped because the role was disabled and the pair was
// attributed to the approver who performed the jump.
type Signature struct {
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	SignedBy   *string    `json:"signed_by,omitempty"`
	Inherited  bool       `json:"inherited"`
}

func (s Signature) IsSigned() bool {
	return s.ApprovedAt != nil
}

// Invoice references the contractor's invoice files in external storage.
type Invoice struct {
	PDFRef string `json:"pdf_ref,omitempty"`
	XMLRef string `json:"xml_ref,omitempty"`
}

func (i Invoice) Complete() bool {
	return i.PDFRef != "" && i.XMLRef != ""
}

// Estimation is a contractor's progress-payment request moving through approval.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Version increases by one on every write and backs the optimistic concurrency check.
type Estimation struct {
	ID             string           `json:"id"`
	Folio          string           `json:"folio"`
	ProjectID      string           `json:"project_id"`
	ContractorName string           `json:"contractor_name"`
	Amount         float64          `json:"amount"`
	Status         EstimationStatus `json:"status"`
	Activation     RoleActivation   `json:"activation"`

	Resident       Signature `json:"resident"`
	Superintendent Signature `json:"superintendent"`
	Leader         Signature `json:"leader"`

	ComprasApprovedAt  *time.Time `json:"compras_approved_at,omitempty"`
	InvoiceUploadedAt  *time.Time `json:"invoice_uploaded_at,omitempty"`
	FinanzasApprovedAt *time.Time `json:"finanzas_approved_at,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`

	Invoice Invoice `json:"invoice"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignatureOf returns the signature slot for an optional role, nil for any other role.
func (e *Estimation) SignatureOf(r Role) *Signature {
	switch r {
	case RoleResident:
		return &e.Resident
	case RoleSuperintendent:
		return &e.Superintendent
	case RoleLeader:
		return &e.Leader
	}
	return nil
}

// ApprovedAtOf returns the approval timestamp slot for the role.
func (e *Estimation) ApprovedAtOf(r Role) **time.Time {
	switch r {
	case RoleResident:
		return &e.Resident.ApprovedAt
	case RoleSuperintendent:
		return &e.Superintendent.ApprovedAt
	case RoleLeader:
		return &e.Leader.ApprovedAt
	case RoleCompras:
		return &e.ComprasApprovedAt
	case RoleContratista:
		return &e.InvoiceUploadedAt
	case RoleFinanzas:
		return &e.FinanzasApprovedAt
	case RolePagos:
		return &e.PaidAt
	}
	return nil
}
