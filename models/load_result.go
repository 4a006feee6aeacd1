package models

// LoadResult summarizes one load cycle over the file manifest.
type LoadResult struct {
	CycleID    string              `json:"cycle_id"`
	Generation uint64              `json:"generation"`
	Bounds     AvailableDateBounds `json:"bounds"`
	Errors     map[string]string   `json:"errors"`
	Files      []FileStatus        `json:"files"`
}

// FileStatus is the outcome of loading one manifest file.
type FileStatus struct {
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
	Encoding string `json:"encoding"`
	Loaded   bool   `json:"loaded"`
}
