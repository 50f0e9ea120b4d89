package worker

// RecalculateEarningPayload is the body of an earning:recalculate task.
type RecalculateEarningPayload struct {
	Period string `json:"period"`
}

// ExportReportPayload is the body of a report:export task.
type ExportReportPayload struct {
	RequestedBy string `json:"requested_by"`
	AsOf        string `json:"as_of"`
}
