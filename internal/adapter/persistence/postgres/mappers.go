package postgres

import (
	"encoding/json"
	"time"

	"estimaciones_obra/internal/domain/entities"
)

func toProjectModel(p entities.Project) projectModel {
	return projectModel{
		ID:                   p.ID,
		Name:                 p.Name,
		ResidentActive:       p.DefaultActivation.ResidentActive,
		SuperintendentActive: p.DefaultActivation.SuperintendentActive,
		LeaderActive:         p.DefaultActivation.LeaderActive,
		CreatedAt:            p.CreatedAt.UTC(),
		UpdatedAt:            p.UpdatedAt.UTC(),
	}
}

func fromProjectModel(m projectModel) entities.Project {
	return entities.Project{
		ID:   m.ID,
		Name: m.Name,
		DefaultActivation: entities.RoleActivation{
			ResidentActive:       m.ResidentActive,
			SuperintendentActive: m.SuperintendentActive,
			LeaderActive:         m.LeaderActive,
		},
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toEstimationModel(e entities.Estimation) estimationModel {
	return estimationModel{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		Folio:          e.Folio,
		ContractorName: e.ContractorName,
		Amount:         e.Amount,
		Status:         string(e.Status),

		ResidentActive:       e.Activation.ResidentActive,
		SuperintendentActive: e.Activation.SuperintendentActive,
		LeaderActive:         e.Activation.LeaderActive,

		ResidentApprovedAt:       utcPtr(e.Resident.ApprovedAt),
		ResidentSignedBy:         e.Resident.SignedBy,
		ResidentInherited:        e.Resident.Inherited,
		SuperintendentApprovedAt: utcPtr(e.Superintendent.ApprovedAt),
		SuperintendentSignedBy:   e.Superintendent.SignedBy,
		SuperintendentInherited:  e.Superintendent.Inherited,
		LeaderApprovedAt:         utcPtr(e.Leader.ApprovedAt),
		LeaderSignedBy:           e.Leader.SignedBy,
		LeaderInherited:          e.Leader.Inherited,

		ComprasApprovedAt:  utcPtr(e.ComprasApprovedAt),
		InvoiceUploadedAt:  utcPtr(e.InvoiceUploadedAt),
		FinanzasApprovedAt: utcPtr(e.FinanzasApprovedAt),
		PaidAt:             utcPtr(e.PaidAt),

		InvoicePDFRef: e.Invoice.PDFRef,
		InvoiceXMLRef: e.Invoice.XMLRef,

		Version:   e.Version,
		CreatedAt: e.CreatedAt.UTC(),
		UpdatedAt: e.UpdatedAt.UTC(),
	}
}

func fromEstimationModel(m estimationModel) entities.Estimation {
	return entities.Estimation{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		Folio:          m.Folio,
		ContractorName: m.ContractorName,
		Amount:         m.Amount,
		Status:         entities.EstimationStatus(m.Status),
		Activation: entities.RoleActivation{
			ResidentActive:       m.ResidentActive,
			SuperintendentActive: m.SuperintendentActive,
			LeaderActive:         m.LeaderActive,
		},
		Resident:       entities.Signature{ApprovedAt: utcPtr(m.ResidentApprovedAt), SignedBy: m.ResidentSignedBy, Inherited: m.ResidentInherited},
		Superintendent: entities.Signature{ApprovedAt: utcPtr(m.SuperintendentApprovedAt), SignedBy: m.SuperintendentSignedBy, Inherited: m.SuperintendentInherited},
		Leader:         entities.Signature{ApprovedAt: utcPtr(m.LeaderApprovedAt), SignedBy: m.LeaderSignedBy, Inherited: m.LeaderInherited},

		ComprasApprovedAt:  utcPtr(m.ComprasApprovedAt),
		InvoiceUploadedAt:  utcPtr(m.InvoiceUploadedAt),
		FinanzasApprovedAt: utcPtr(m.FinanzasApprovedAt),
		PaidAt:             utcPtr(m.PaidAt),

		Invoice: entities.Invoice{PDFRef: m.InvoicePDFRef, XMLRef: m.InvoiceXMLRef},

		Version:   m.Version,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toHistoryModel(h entities.ApprovalHistoryEntry) historyModel {
	return historyModel{
		ID:           h.ID,
		EstimationID: h.EstimationID,
		Status:       string(h.Status),
		Role:         string(h.Role),
		UserID:       h.UserID,
		UserName:     h.UserName,
		Timestamp:    h.Timestamp.UTC(),
	}
}

func fromHistoryModel(m historyModel) entities.ApprovalHistoryEntry {
	return entities.ApprovalHistoryEntry{
		ID:           m.ID,
		EstimationID: m.EstimationID,
		Status:       entities.EstimationStatus(m.Status),
		Role:         entities.Role(m.Role),
		UserID:       m.UserID,
		UserName:     m.UserName,
		Timestamp:    m.Timestamp.UTC(),
	}
}

func toBillingPaymentModel(p entities.BillingPayment) billingPaymentModel {
	m := billingPaymentModel{
		ID:           p.ID,
		EstimationID: p.EstimationID,
		Amount:       p.Amount,
		PaidBy:       p.PaidBy,
		PaidOn:       p.Date.UTC(),
		Status:       string(p.Status),
	}
	if len(p.MPPayloadRaw) > 0 {
		raw := string(p.MPPayloadRaw)
		m.MPPayloadRaw = &raw
	}
	return m
}

func fromBillingPaymentModel(m billingPaymentModel) entities.BillingPayment {
	p := entities.BillingPayment{
		ID:           m.ID,
		EstimationID: m.EstimationID,
		Amount:       m.Amount,
		PaidBy:       m.PaidBy,
		Date:         m.PaidOn.UTC(),
		Status:       entities.PaymentStatus(m.Status),
	}
	if m.MPPayloadRaw != nil && *m.MPPayloadRaw != "" {
		p.MPPayloadRaw = json.RawMessage(*m.MPPayloadRaw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.MPPayloadRaw, &parsed); err == nil {
			p.MPPayload = parsed
		}
	}
	return p
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
