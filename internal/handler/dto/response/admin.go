package response

type FetchNowResponse struct {
	Success  bool  `json:"success"`
	Inserted int   `json:"inserted"`
	Fetched  int   `json:"fetched"`
	Skipped  int   `json:"skipped"`
	TookMS   int64 `json:"took_ms"`
}
