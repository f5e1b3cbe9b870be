package importer

// RowIssue is a per-row problem surfaced by the write stage.
type RowIssue struct {
	Row   int    `json:"row"`
	Issue string `json:"issue"`
}

// MetadataCreated counts reference entities created by the write stage.
type MetadataCreated struct {
	Areas        int `json:"areas"`
	Systems      int `json:"systems"`
	TestPackages int `json:"testPackages"`
}

// ImportResult is the write stage's result payload. On partial failure the
// counts reflect what did commit, so a retry resumes rather than restarts.
type ImportResult struct {
	Success           bool            `json:"success"`
	DrawingsCreated   int             `json:"drawingsCreated"`
	ComponentsCreated int             `json:"componentsCreated"`
	ComponentsByType  map[string]int  `json:"componentsByType"`
	Metadata          MetadataCreated `json:"metadataCreated"`
	WeldsCreated      int             `json:"weldsCreated,omitempty"`
	WeldersCreated    int             `json:"weldersCreated,omitempty"`
	WeldersAssigned   int             `json:"weldersAssigned,omitempty"`
	DurationMS        int64           `json:"duration_ms"`
	Error             string          `json:"error,omitempty"`
	Details           []RowIssue      `json:"details,omitempty"`
}
