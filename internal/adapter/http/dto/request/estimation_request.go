package request

import (
	"strings"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/usecase"
)

type CreateEstimationRequest struct {
	ProjectID      string  `json:"project_id" binding:"required"`
	Folio          string  `json:"folio" binding:"required"`
	ContractorName string  `json:"contractor_name"`
	Amount         float64 `json:"amount" binding:"required"`
}

func (r CreateEstimationRequest) ToInput() usecase.CreateEstimationInput {
	return usecase.CreateEstimationInput{
		ProjectID:      strings.TrimSpace(r.ProjectID),
		Folio:          strings.TrimSpace(r.Folio),
		ContractorName: strings.TrimSpace(r.ContractorName),
		Amount:         r.Amount,
	}
}

// InvoiceUploadRequest references the invoice files already stored by the contractor.
type InvoiceUploadRequest struct {
	PDFRef string `json:"pdf_ref"`
	XMLRef string `json:"xml_ref"`
}

func (r InvoiceUploadRequest) ToEntity() entities.Invoice {
	return entities.Invoice{PDFRef: r.PDFRef, XMLRef: r.XMLRef}
}
