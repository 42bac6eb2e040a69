package models

// Recall is one enforcement report. It is built fresh from every upstream
// response and never stored.
type Recall struct {
	RecallID           string `json:"recall_id,omitempty"`
	ProductDescription string `json:"product_description,omitempty"`
	ReasonForRecall    string `json:"reason_for_recall,omitempty"`
	Classification     string `json:"classification,omitempty"`
	RecallDate         string `json:"recall_date,omitempty"`
}
