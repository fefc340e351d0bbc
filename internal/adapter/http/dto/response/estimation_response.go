package response

import (
	"time"

	"estimaciones_obra/internal/domain/entities"
	"estimaciones_obra/internal/domain/workflow"
	"estimaciones_obra/internal/usecase"
)

type SignatureResponse struct {
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	SignedBy   *string    `json:"signed_by,omitempty"`
	Inherited  bool       `json:"inherited"`
}

type EstimationResponse struct {
	ID             string  `json:"id"`
	ProjectID      string  `json:"project_id"`
	Folio          string  `json:"folio"`
	ContractorName string  `json:"contractor_name"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	// RequiredRole is the role expected to act next; empty once paid.
	RequiredRole string `json:"required_role,omitempty"`

	IsResidentActive       bool `json:"is_resident_active"`
	IsSuperintendentActive bool `json:"is_superintendent_active"`
	IsLeaderActive         bool `json:"is_leader_active"`

	Resident       SignatureResponse `json:"resident"`
	Superintendent SignatureResponse `json:"superintendent"`
	Leader         SignatureResponse `json:"leader"`

	ComprasApprovedAt  *time.Time `json:"compras_approved_at,omitempty"`
	InvoiceUploadedAt  *time.Time `json:"invoice_uploaded_at,omitempty"`
	FinanzasApprovedAt *time.Time `json:"finanzas_approved_at,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`

	InvoicePDFRef string `json:"invoice_pdf_ref,omitempty"`
	InvoiceXMLRef string `json:"invoice_xml_ref,omitempty"`

	ProgressPercent int       `json:"progress_percent"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromEstimation(e entities.Estimation) EstimationResponse {
	res := EstimationResponse{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		Folio:          e.Folio,
		ContractorName: e.ContractorName,
		Amount:         e.Amount,
		Status:         string(e.Status),

		IsResidentActive:       e.Activation.ResidentActive,
		IsSuperintendentActive: e.Activation.SuperintendentActive,
		IsLeaderActive:         e.Activation.LeaderActive,

		Resident:       fromSignature(e.Resident),
		Superintendent: fromSignature(e.Superintendent),
		Leader:         fromSignature(e.Leader),

		ComprasApprovedAt:  e.ComprasApprovedAt,
		InvoiceUploadedAt:  e.InvoiceUploadedAt,
		FinanzasApprovedAt: e.FinanzasApprovedAt,
		PaidAt:             e.PaidAt,

		InvoicePDFRef: e.Invoice.PDFRef,
		InvoiceXMLRef: e.Invoice.XMLRef,

		ProgressPercent: workflow.ProgressPercent(e.Status),
		Version:         e.Version,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if role, err := workflow.RequiredRole(e.Status, e.Activation); err == nil {
		res.RequiredRole = string(role)
	}
	return res
}

func FromEstimations(items []entities.Estimation) []EstimationResponse {
	out := make([]EstimationResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEstimation(e))
	}
	return out
}

func fromSignature(s entities.Signature) SignatureResponse {
	return SignatureResponse{ApprovedAt: s.ApprovedAt, SignedBy: s.SignedBy, Inherited: s.Inherited}
}

type ApprovalOutcomeResponse struct {
	Estimation     EstimationResponse `json:"estimation"`
	PreviousStatus string             `json:"previous_status"`
	EntryID        string             `json:"history_entry_id"`
	Inherited      []string           `json:"inherited_roles,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
}

func FromApprovalOutcome(o usecase.ApprovalOutcome) ApprovalOutcomeResponse {
	res := ApprovalOutcomeResponse{
		Estimation:     FromEstimation(o.Estimation),
		PreviousStatus: string(o.PreviousStatus),
		EntryID:        o.Entry.ID,
		Warnings:       o.Warnings,
	}
	for _, r := range o.Inherited {
		res.Inherited = append(res.Inherited, string(r))
	}
	return res
}

type HistoryEntryResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Role           string    `json:"role"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	Timestamp      time.Time `json:"timestamp"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
	Delayed        bool      `json:"delayed"`
}

type ApproverResponse struct {
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"`
	At        time.Time `json:"at"`
	Inherited bool      `json:"inherited"`
}

type StepResponse struct {
	Status    string            `json:"status"`
	Completed bool              `json:"completed"`
	Approver  *ApproverResponse `json:"approver,omitempty"`
}

type HistoryResponse struct {
	Estimation      EstimationResponse     `json:"estimation"`
	Entries         []HistoryEntryResponse `json:"entries"`
	Steps           []StepResponse         `json:"steps"`
	ProgressPercent int                    `json:"progress_percent"`
	Stalled         bool                   `json:"stalled"`
}

func FromHistory(h usecase.EstimationHistory) HistoryResponse {
	res := HistoryResponse{
		Estimation:      FromEstimation(h.Estimation),
		Entries:         make([]HistoryEntryResponse, 0, len(h.Entries)),
		Steps:           make([]StepResponse, 0, len(h.Steps)),
		ProgressPercent: h.ProgressPercent,
		Stalled:         h.Stalled,
	}
	for _, e := range h.Entries {
		res.Entries = append(res.Entries, HistoryEntryResponse{
			ID:             e.ID,
			Status:         string(e.Status),
			Role:           string(e.Role),
			UserID:         e.UserID,
			UserName:       e.UserName,
			Timestamp:      e.Timestamp,
			ElapsedSeconds: int64(e.Elapsed / time.Second),
			Delayed:        e.Delayed,
		})
	}
	for _, s := range h.Steps {
		step := StepResponse{Status: string(s.Status), Completed: s.Completed}
		if s.Approver != nil {
			step.Approver = &ApproverResponse{
				UserName:  s.Approver.UserName,
				Role:      string(s.Approver.Role),
				At:        s.Approver.At,
				Inherited: s.Approver.Inherited,
			}
		}
		res.Steps = append(res.Steps, step)
	}
	return res
}
