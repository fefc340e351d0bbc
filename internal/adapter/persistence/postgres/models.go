package postgres

import (
	"time"
)

type projectModel struct {
	ID                   string    `gorm:"column:id;primaryKey"`
	Name                 string    `gorm:"column:name"`
	ResidentActive       bool      `gorm:"column:is_resident_active"`
	SuperintendentActive bool      `gorm:"column:is_superintendent_active"`
	LeaderActive         bool      `gorm:"column:is_leader_active"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

type estimationModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	ProjectID      string  `gorm:"column:project_id"`
	Folio          string  `gorm:"column:folio"`
	ContractorName string  `gorm:"column:contractor_name"`
	Amount         float64 `gorm:"column:amount"`
	Status         string  `gorm:"column:status"`

	ResidentActive       bool `gorm:"column:is_resident_active"`
	SuperintendentActive bool `gorm:"column:is_superintendent_active"`
	LeaderActive         bool `gorm:"column:is_leader_active"`

	ResidentApprovedAt       *time.Time `gorm:"column:resident_approved_at"`
	ResidentSignedBy         *string    `gorm:"column:resident_signed_by"`
	ResidentInherited        bool       `gorm:"column:resident_inherited"`
	SuperintendentApprovedAt *time.Time `gorm:"column:superintendent_approved_at"`
	SuperintendentSignedBy   *string    `gorm:"column:superintendent_signed_by"`
	SuperintendentInherited  bool       `gorm:"column:superintendent_inherited"`
	LeaderApprovedAt         *time.Time `gorm:"column:leader_approved_at"`
	LeaderSignedBy           *string    `gorm:"column:leader_signed_by"`
	LeaderInherited          bool       `gorm:"column:leader_inherited"`

	ComprasApprovedAt  *time.Time `gorm:"column:compras_approved_at"`
	InvoiceUploadedAt  *time.Time `gorm:"column:invoice_uploaded_at"`
	FinanzasApprovedAt *time.Time `gorm:"column:finanzas_approved_at"`
	PaidAt             *time.Time `gorm:"column:paid_at"`

	InvoicePDFRef string `gorm:"column:invoice_pdf_ref"`
	InvoiceXMLRef string `gorm:"column:invoice_xml_ref"`

	Version   int64     `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (estimationModel) TableName() string { return "estimations" }

type historyModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	EstimationID string    `gorm:"column:estimation_id"`
	Status       string    `gorm:"column:status"`
	Role         string    `gorm:"column:role"`
	UserID       string    `gorm:"column:user_id"`
	UserName     string    `gorm:"column:user_name"`
	Timestamp    time.Time `gorm:"column:timestamp"`
}

func (historyModel) TableName() string { return "approval_history" }

type billingPaymentModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	EstimationID string    `gorm:"column:estimation_id"`
	Amount       float64   `gorm:"column:amount"`
	PaidBy       string    `gorm:"column:paid_by"`
	PaidOn       time.Time `gorm:"column:paid_on"`
	Status       string    `gorm:"column:status"`
	MPPayloadRaw *string   `gorm:"column:mp_payload_raw;type:jsonb"`
}

func (billingPaymentModel) TableName() string { return "billing_payments" }
