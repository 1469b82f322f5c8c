package domain

// ReallocationEntry - canonical reallocation record. At most one "latest"
// entry per chassis survives the chassis join (source order is the tiebreak).
type ReallocationEntry struct {
	ChassisNumber  string `json:"chassis_number"`
	Customer       string `json:"customer"`
	Model          string `json:"model"`
	OriginalDealer string `json:"original_dealer"`
	ReallocatedTo  string `json:"reallocated_to"`
	ProductionSite string `json:"production_site"`
	IssueType      string `json:"issue_type,omitempty"`
	IssueDetail    string `json:"issue_detail,omitempty"`
}
