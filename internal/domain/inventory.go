package domain

// InconsistencyDetail records one event whose stored participant counter
// drifted from the reservation-derived total. Difference is actual minus
// stored, so a negative value means the counter was inflated.
type InconsistencyDetail struct {
	ScenarioTitle string `json:"scenario_title"`
	StoreName     string `json:"store_name"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	StoredCount   int    `json:"stored_count"`
	ActualCount   int    `json:"actual_count"`
	Difference    int    `json:"difference"`
}

// ConsistencyReport is the result of one full inventory consistency scan.
type ConsistencyReport struct {
	TotalChecked         int                   `json:"total_checked"`
	InconsistenciesFound int                   `json:"inconsistencies_found"`
	AutoFixed            int                   `json:"auto_fixed"`
	ExecutionTimeMS      int64                 `json:"execution_time_ms"`
	Details              []InconsistencyDetail `json:"details"`
}
